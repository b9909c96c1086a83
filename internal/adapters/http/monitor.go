package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"cooleradmin/internal/ports"
)

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ports.RequestFilter{
		CustomerID: q.Get("customer_id"),
		Method:     q.Get("method"),
		Page:       pageFromQuery(r),
	}
	if v := q.Get("status_code"); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation failed", "status_code must be an integer")
			return
		}
		filter.StatusCode = code
	}
	if v := q.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation failed", "since must be RFC3339")
			return
		}
		filter.Since = &since
	}
	list, err := s.monitor.Requests(r.Context(), filter)
	if err != nil {
		respondError(w, s.logger, "list requests", err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := ports.TransactionFilter{
		CustomerID: r.URL.Query().Get("customer_id"),
		Page:       pageFromQuery(r),
	}
	list, err := s.monitor.Transactions(r.Context(), filter)
	if err != nil {
		respondError(w, s.logger, "list transactions", err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.monitor.Stats(r.Context())
	if err != nil {
		respondError(w, s.logger, "stats", err)
		return
	}
	writeData(w, http.StatusOK, stats)
}
