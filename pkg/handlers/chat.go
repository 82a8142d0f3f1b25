package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	relay "github.com/chatrelay/relay/pkg"
	"github.com/chatrelay/relay/pkg/audit"
	"github.com/chatrelay/relay/pkg/models"
)

const (
	maxRequestBodySize = 1 << 20

	queryRequiredMessage = "Query is required"
	invalidBodyMessage   = "Invalid request body"
	internalErrorMessage = "An internal error has occurred"
)

func Chat(cfg *relay.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.ChatRequest

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
		if err != nil {
			cfg.Logger.Debugf("Unable to read request body: %s", err)
			writeJSON(cfg, w, models.ErrorResponse{Error: invalidBodyMessage}, http.StatusBadRequest)
			return
		}

		// An empty body carries no query at all.
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &request); err != nil {
				cfg.Logger.Debugf("Unable to decode request body: %s", err)
				writeJSON(cfg, w, models.ErrorResponse{Error: invalidBodyMessage}, http.StatusBadRequest)
				return
			}
		}

		if request.Query == "" {
			writeJSON(cfg, w, models.ErrorResponse{Error: queryRequiredMessage}, http.StatusBadRequest)
			return
		}

		now := time.Now()
		text, err := cfg.Provider.Generate(r.Context(), request.Query)

		record := &audit.RelayData{
			Model:          modelName(cfg),
			QueryLength:    len(request.Query),
			ResponseLength: len(text),
			Success:        err == nil,
			Duration:       time.Since(now),
			Timestamp:      now.Unix(),
		}
		if cfg.Audit != nil {
			if aerr := cfg.Audit.Write(record); aerr != nil {
				cfg.Logger.Errorf("Unable to write audit record: %s", aerr)
			}
		}

		if err != nil {
			cfg.Logger.Errorf("Unable to generate response: %s", err)
			writeJSON(cfg, w, models.ErrorResponse{Error: internalErrorMessage}, http.StatusInternalServerError)
			return
		}

		writeJSON(cfg, w, models.ChatResponse{Response: text}, http.StatusOK)
	})
}

func modelName(cfg *relay.Config) string {
	if cfg.ModelEnv == nil {
		return ""
	}
	return cfg.ModelEnv.Name
}
