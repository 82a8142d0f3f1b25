package handlers

import (
	"encoding/json"
	"net/http"

	relay "github.com/chatrelay/relay/pkg"
)

func writeJSON(cfg *relay.Config, w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		cfg.Logger.Errorf("Unable to encode response: %s", err)
	}
}
