package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grubdash/backend/internal/pipeline"
)

// dataEnvelope wraps every successful response body
type dataEnvelope struct {
	Data any `json:"data"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}

// WriteResult writes the single response for a pipeline run
func WriteResult(w http.ResponseWriter, r *http.Request, result pipeline.Result, err error, logger *slog.Logger) {
	if err != nil {
		if pe, ok := pipeline.AsError(err); ok {
			logger.Info("request rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"kind", pe.Kind.String(),
				"error", pe.Message,
			)
			WriteError(w, pe.Status(), pe.Message, logger)
			return
		}
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
		return
	}

	if result.Status == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	WriteJSON(w, result.Status, dataEnvelope{Data: result.Data}, logger)
}
