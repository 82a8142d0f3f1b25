package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/chatrelay/relay/pkg/models"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
)

type Middleware func(http.Handler) http.Handler

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
