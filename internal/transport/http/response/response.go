package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/nearlive/event-search-service/internal/domain"
)

// ErrorBody is the wire shape for failures:
// {"error":"...","details":{...}} with details omitted when empty.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Err maps an application error onto the HTTP surface. Upstream errors
// forward the upstream status code and best-effort diagnostic body; anything
// unrecognized collapses to a generic 500 with details kept in logs only.
func Err(w http.ResponseWriter, err error) {
	var ae *domain.AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case domain.CodeValidation:
			JSON(w, http.StatusBadRequest, ErrorBody{Error: ae.Message, Details: metaOrNil(ae.Meta)})
			return
		case domain.CodeConfig:
			JSON(w, http.StatusInternalServerError, ErrorBody{Error: ae.Message})
			return
		case domain.CodeUpstream:
			status := ae.Status
			if status < 400 || status > 599 {
				status = http.StatusBadGateway
			}
			var details any
			if ae.Details != "" {
				details = ae.Details
			}
			JSON(w, status, ErrorBody{Error: ae.Message, Details: details})
			return
		}
	}

	zlog.Error().Err(err).Msg("unhandled error")
	JSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal error"})
}

func metaOrNil(meta map[string]string) any {
	if len(meta) == 0 {
		return nil
	}
	return meta
}
