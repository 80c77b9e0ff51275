package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/QuangTrungK15/motel-management/internal/domain/auth"
	"github.com/QuangTrungK15/motel-management/internal/domain/contract"
	"github.com/QuangTrungK15/motel-management/internal/domain/payment"
	"github.com/QuangTrungK15/motel-management/internal/domain/room"
	"github.com/QuangTrungK15/motel-management/internal/domain/settings"
	"github.com/QuangTrungK15/motel-management/internal/domain/tenant"
	"github.com/QuangTrungK15/motel-management/internal/domain/utility"
)

// uniqueIndexes are partial indexes gorm tags cannot express. They back the
// invariants the services check: at most one active contract per room and per
// tenant, and a non-empty id number used at most once per table.
var uniqueIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_contracts_one_active_per_room
		ON contracts (room_id) WHERE status = 'active'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_contracts_one_active_per_tenant
		ON contracts (tenant_id) WHERE status = 'active'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tenants_unique_id_number
		ON tenants (id_number) WHERE id_number <> ''`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_occupants_unique_id_number
		ON occupants (id_number) WHERE id_number <> ''`,
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&room.Room{},
		&tenant.Tenant{},
		&contract.Contract{},
		&contract.Occupant{},
		&payment.Payment{},
		&utility.Utility{},
		&settings.Setting{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range uniqueIndexes {
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
