package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gungle/gungle/internal/api/handler"
	"github.com/gungle/gungle/internal/api/middleware"
	"github.com/gungle/gungle/internal/services/catalog"
	"github.com/gungle/gungle/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	CatalogService *catalog.Service
	UploadDir      string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.CatalogService)
	firearmHandler := handler.NewFirearmHandler(cfg.CatalogService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game routes. Fixed paths are registered before the {id} routes so
	// they are matched first.
	api.HandleFunc("/game/new", gameHandler.New).Methods(http.MethodPost)
	api.HandleFunc("/game/firearm-names", gameHandler.FirearmNames).Methods(http.MethodGet)
	api.HandleFunc("/game/daily-firearm", gameHandler.DailyFirearm).Methods(http.MethodGet)
	api.HandleFunc("/game/admin/sessions", gameHandler.Sessions).Methods(http.MethodGet)
	api.HandleFunc("/game/{id}/guess", gameHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/game/{id}/status", gameHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/game/{id}/reveal", gameHandler.Reveal).Methods(http.MethodGet)

	// Catalog routes
	api.HandleFunc("/firearms", firearmHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/firearms", firearmHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/firearms/{id}", firearmHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/firearms/{id}", firearmHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/firearms/{id}", firearmHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Static firearm images
	if cfg.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
