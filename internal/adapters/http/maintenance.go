package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type clearRequest struct {
	Tables []string `json:"tables"`
}

// handleClear empties the requested tables. Partial failures still return
// 200 with the per-table breakdown; the caller inspects failures.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}
	summary, err := s.maintenance.Clear(r.Context(), req.Tables)
	if err != nil {
		respondError(w, s.logger, "clear tables", err)
		return
	}
	writeData(w, http.StatusOK, summary)
}
