package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"fincalc/config"
	"fincalc/service"
)

// CalculationResponse is the body of every successful calculator call.
type CalculationResponse[T any] struct {
	Messages []string `json:"messages"`
	Result   T        `json:"result"`
}

// decodeJSONRequest enforces POST and a JSON body, writing the error
// response itself when it returns false.
func decodeJSONRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeCalculationError(w http.ResponseWriter, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, config.ErrOutOfRange):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Error().Err(err).Msg("Calculation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeJSON encodes into a buffer first so a failed encode can still
// produce a clean 500.
func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug().Err(err).Msg("Failed to write response")
	}
}
