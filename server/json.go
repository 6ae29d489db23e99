package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jrsteele09/go-jobboard/api"
)

const (
	contentTypeJSON = "application/json"
	maxBodyBytes    = 1 << 20
)

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes the {"message": ...} body the client reads errors from
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, api.Message{Message: message})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
}
