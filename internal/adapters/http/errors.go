package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"cooleradmin/internal/adapters/upstream"
	"cooleradmin/internal/ports"
)

// Generic client-facing messages. Full errors are logged server-side only.
const (
	msgInternal    = "internal error"
	msgUpstream    = "upstream request failed"
	msgNotFound    = "not found"
	msgInvalidJSON = "invalid JSON body"
)

// respondError maps service errors onto the envelope. The HTTP status
// mirrors the upstream failure where one exists, 500 otherwise.
func respondError(w http.ResponseWriter, logger zerolog.Logger, op string, err error) {
	var ve *ports.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, "validation failed", ve.Error())
		return
	}
	if errors.Is(err, upstream.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound, "")
		return
	}
	var se *upstream.StatusError
	if errors.As(err, &se) {
		logger.Warn().Err(err).Str("op", op).Msg("upstream error")
		writeError(w, se.Code, msgUpstream, se.Message)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusGatewayTimeout, msgUpstream, "timed out")
		return
	}
	logger.Error().Err(err).Str("op", op).Msg("handler error")
	writeError(w, http.StatusInternalServerError, msgInternal, "")
}
