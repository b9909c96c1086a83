package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cooleradmin/internal/domain"
	"cooleradmin/internal/ports"
)

func (s *Server) handleListAnomalies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ports.AnomalyFilter{
		Status:   q.Get("status"),
		Severity: q.Get("severity"),
		Type:     q.Get("type"),
		Page:     pageFromQuery(r),
	}
	list, err := s.anomalies.List(r.Context(), filter)
	if err != nil {
		respondError(w, s.logger, "list anomalies", err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleGetAnomaly(w http.ResponseWriter, r *http.Request) {
	flag, err := s.anomalies.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, s.logger, "get anomaly", err)
		return
	}
	writeData(w, http.StatusOK, flag)
}

func (s *Server) handleResolveAnomaly(w http.ResponseWriter, r *http.Request) {
	var res domain.Resolution
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}
	flag, err := s.anomalies.Resolve(r.Context(), chi.URLParam(r, "id"), res)
	if err != nil {
		respondError(w, s.logger, "resolve anomaly", err)
		return
	}
	writeData(w, http.StatusOK, flag)
}
