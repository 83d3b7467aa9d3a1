package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/auth"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/config"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	sessionService *service.SessionService,
	valueService *service.ValueService,
	analyticsService *service.AnalyticsService,
	assetService *service.AssetService,
	transactionService *service.TransactionService,
	issuer *auth.TokenIssuer,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		sessionHandler := handlers.NewSessionHandler(sessionService)
		r.Post("/session/demo", sessionHandler.CreateDemo)

		// Everything below requires a session cookie
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.Session(issuer))

			r.Get("/session/me", sessionHandler.Me)

			valueHandler := handlers.NewValueHandler(valueService)
			r.Get("/values", valueHandler.Snapshot)
			r.Post("/values", valueHandler.RecordValue)
			r.Get("/export/values.csv", valueHandler.ExportCSV)

			dashboardHandler := handlers.NewDashboardHandler(analyticsService)
			r.Get("/dashboard/analytics", dashboardHandler.Analytics)

			assetHandler := handlers.NewAssetHandler(assetService)
			r.Route("/assets", func(r chi.Router) {
				r.Get("/tree", assetHandler.Tree)
				r.Post("/", assetHandler.CreateAsset)
				r.Post("/classes", assetHandler.CreateClass)
				r.Delete("/classes/{classId}", assetHandler.DeleteClass)
				r.Post("/instruments", assetHandler.CreateInstrument)
				r.Post("/providers", assetHandler.CreateProvider)
				r.Put("/{assetId}", assetHandler.UpdateAsset)
				r.Delete("/{assetId}", assetHandler.DeleteAsset)
			})

			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", transactionHandler.List)
				r.Post("/", transactionHandler.Create)
				r.Get("/summary", transactionHandler.Summary)
				r.Delete("/{transactionId}", transactionHandler.Delete)
			})

			r.Get("/categories", transactionHandler.ListCategories)
			r.Post("/categories", transactionHandler.CreateCategory)
		})
	})

	return r
}
