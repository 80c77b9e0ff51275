package handler

import (
	authdomain "github.com/QuangTrungK15/motel-management/internal/domain/auth"
	contractdomain "github.com/QuangTrungK15/motel-management/internal/domain/contract"
	paymentdomain "github.com/QuangTrungK15/motel-management/internal/domain/payment"
	reportdomain "github.com/QuangTrungK15/motel-management/internal/domain/report"
	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	settingsdomain "github.com/QuangTrungK15/motel-management/internal/domain/settings"
	tenantdomain "github.com/QuangTrungK15/motel-management/internal/domain/tenant"
	utilitydomain "github.com/QuangTrungK15/motel-management/internal/domain/utility"
	"github.com/QuangTrungK15/motel-management/pkg/logger"
)

type Handlers struct {
	Auth      *authdomain.Service
	Rooms     *roomdomain.Service
	Tenants   *tenantdomain.Service
	Contracts *contractdomain.Service
	Payments  *paymentdomain.Service
	Utilities *utilitydomain.Service
	Settings  *settingsdomain.Service
	Reports   *reportdomain.Service

	log logger.Logger
}

func New(
	auth *authdomain.Service,
	rooms *roomdomain.Service,
	tenants *tenantdomain.Service,
	contracts *contractdomain.Service,
	payments *paymentdomain.Service,
	utilities *utilitydomain.Service,
	settings *settingsdomain.Service,
	reports *reportdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Auth:      auth,
		Rooms:     rooms,
		Tenants:   tenants,
		Contracts: contracts,
		Payments:  payments,
		Utilities: utilities,
		Settings:  settings,
		Reports:   reports,
		log:       log,
	}
}
