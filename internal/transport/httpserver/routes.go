package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/QuangTrungK15/motel-management/internal/config"
	"github.com/QuangTrungK15/motel-management/internal/transport/httpserver/handler"
	authmw "github.com/QuangTrungK15/motel-management/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, verifier authmw.TokenVerifier) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Post("/auth/login", handlers.Login)

		auth := authmw.NewJWTAuth(verifier)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/dashboard", handlers.Dashboard)

			r.Get("/rooms", handlers.ListRooms)
			r.Patch("/rooms/{id}", handlers.UpdateRoom)

			r.Get("/tenants", handlers.ListTenants)
			r.Post("/tenants", handlers.CreateTenant)
			r.Put("/tenants/{id}", handlers.UpdateTenant)
			r.Delete("/tenants/{id}", handlers.DeleteTenant)

			r.Get("/contracts", handlers.ListContracts)
			r.Get("/contracts/move-in-options", handlers.MoveInOptions)
			r.Post("/contracts/move-in", handlers.MoveIn)
			r.Post("/contracts/{id}/move-out", handlers.MoveOut)

			r.Get("/payments", handlers.PaymentsByMonth)
			r.Post("/payments", handlers.AddPayment)
			r.Post("/payments/generate", handlers.GenerateRent)
			r.Post("/payments/{id}/status", handlers.SetPaymentStatus)
			r.Delete("/payments/{id}", handlers.DeletePayment)

			r.Get("/utilities", handlers.UtilitiesByMonth)
			r.Put("/utilities", handlers.SaveUtility)
			r.Post("/utilities/generate", handlers.GenerateUtilities)

			r.Get("/settings", handlers.GetSettings)
			r.Put("/settings/motel-info", handlers.SaveMotelInfo)
			r.Put("/settings/rates", handlers.SaveRates)

			r.Get("/reports/monthly", handlers.MonthlyReport)
		})
	})

	return r
}
