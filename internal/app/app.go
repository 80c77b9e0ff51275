package app

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/QuangTrungK15/motel-management/internal/config"
	"github.com/QuangTrungK15/motel-management/internal/db"
	authdomain "github.com/QuangTrungK15/motel-management/internal/domain/auth"
	contractdomain "github.com/QuangTrungK15/motel-management/internal/domain/contract"
	identitydomain "github.com/QuangTrungK15/motel-management/internal/domain/identity"
	paymentdomain "github.com/QuangTrungK15/motel-management/internal/domain/payment"
	reportdomain "github.com/QuangTrungK15/motel-management/internal/domain/report"
	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	settingsdomain "github.com/QuangTrungK15/motel-management/internal/domain/settings"
	tenantdomain "github.com/QuangTrungK15/motel-management/internal/domain/tenant"
	utilitydomain "github.com/QuangTrungK15/motel-management/internal/domain/utility"
	"github.com/QuangTrungK15/motel-management/internal/repository/inmemory"
	authrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/auth"
	contractrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/contract"
	identityrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/identity"
	paymentrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/payment"
	reportrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/report"
	roomrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/room"
	settingsrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/settings"
	tenantrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/tenant"
	utilityrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/utility"
	"github.com/QuangTrungK15/motel-management/internal/transport/httpserver"
	"github.com/QuangTrungK15/motel-management/internal/transport/httpserver/handler"
	"github.com/QuangTrungK15/motel-management/pkg/logger"
)

const settingsCacheTTL = 5 * time.Minute

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load(log)

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	log.Info("app: seeding defaults")
	if err := db.Seed(dbConn, cfg.Seed); err != nil {
		return nil, err
	}

	registry := identitydomain.NewService(identityrepo.NewPostgres(dbConn))

	authService := authdomain.NewService(authrepo.NewPostgres(dbConn), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	roomService := roomdomain.NewService(roomrepo.NewPostgres(dbConn))
	tenantService := tenantdomain.NewService(tenantrepo.NewPostgres(dbConn), registry)
	contractService := contractdomain.NewService(contractrepo.NewPostgres(dbConn), registry)
	paymentService := paymentdomain.NewService(paymentrepo.NewPostgres(dbConn))
	settingsService := settingsdomain.NewServiceWithCache(
		settingsrepo.NewPostgres(dbConn),
		inmemory.NewInMemorySettingsCache(settingsCacheTTL),
	)
	utilityService := utilitydomain.NewService(utilityrepo.NewPostgres(dbConn), settingsService)
	reportService := reportdomain.NewService(reportrepo.NewPostgres(dbConn))

	handlers := handler.New(
		authService,
		roomService,
		tenantService,
		contractService,
		paymentService,
		utilityService,
		settingsService,
		reportService,
		log,
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, authService)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
