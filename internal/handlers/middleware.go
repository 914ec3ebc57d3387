package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WithMiddleware wraps next with panic recovery and an access log written to out.
func WithMiddleware(next http.Handler, out io.Writer) http.Handler {
	return handlers.LoggingHandler(out, handlers.RecoveryHandler()(next))
}
