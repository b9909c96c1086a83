package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cooleradmin/internal/ports"
)

// Pinger reports backing-store reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires the dashboard services to their routes.
type Server struct {
	customers   ports.Customers
	anomalies   ports.Anomalies
	monitor     ports.Monitor
	maintenance ports.Maintenance
	db          Pinger

	adminPassword string
	logger        zerolog.Logger
}

func New(customers ports.Customers, anomalies ports.Anomalies, monitor ports.Monitor, maintenance ports.Maintenance, db Pinger, adminPassword string) *Server {
	return &Server{
		customers:     customers,
		anomalies:     anomalies,
		monitor:       monitor,
		maintenance:   maintenance,
		db:            db,
		adminPassword: adminPassword,
		logger:        log.With().Str("component", "http").Logger(),
	}
}

// Routes returns the chi router for the admin API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", s.handleListCustomers)
			r.Post("/", s.handleCreateCustomer)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetCustomer)
				r.Patch("/", s.handleUpdateCustomer)
				r.Delete("/", s.handleDeleteCustomer)
				r.Post("/magic-link", s.handleMagicLink)
			})
		})

		r.Route("/anomalies", func(r chi.Router) {
			r.Get("/", s.handleListAnomalies)
			r.Get("/{id}", s.handleGetAnomaly)
			r.Post("/{id}/resolve", s.handleResolveAnomaly)
		})

		r.Get("/requests", s.handleListRequests)
		r.Get("/transactions", s.handleListTransactions)
		r.Get("/stats", s.handleStats)

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly(s.adminPassword))
			r.Post("/clear", s.handleClear)
		})
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "not ready", err.Error())
			return
		}
	}
	writeData(w, http.StatusOK, map[string]string{"status": "ready"})
}
