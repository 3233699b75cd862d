// Package analyze exposes the single analysis endpoint over HTTP.
package analyze

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bigpicture_agent/pkg/core/agent"
	"bigpicture_agent/pkg/core/utils"
	"bigpicture_agent/pkg/models"
)

// Handler serves POST /analyze-part/.
type Handler struct {
	pipeline      *agent.Pipeline
	allowedOrigin string
}

// NewHandler creates the analyze handler.
func NewHandler(p *agent.Pipeline, allowedOrigin string) *Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return &Handler{pipeline: p, allowedOrigin: allowedOrigin}
}

func (h *Handler) cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleAnalyzePart decodes the message, runs the pipeline and writes the
// result. The pipeline's terminal short-circuits (guidance, not found) come
// back as 200s; classified errors map onto their HTTP status.
func (h *Handler) HandleAnalyzePart(w http.ResponseWriter, r *http.Request) {
	h.cors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, utils.CreateBadRequestError("invalid request body"))
		return
	}

	analysisID := uuid.NewString()
	start := time.Now()
	utils.Logger.Info().Str("analysis_id", analysisID).Msg("analysis started")

	result, err := h.pipeline.AnalyzePart(r.Context(), req.Message)
	if err != nil {
		utils.Logger.Error().
			Str("analysis_id", analysisID).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("analysis failed")
		h.respondError(w, err)
		return
	}

	utils.Logger.Info().
		Str("analysis_id", analysisID).
		Dur("elapsed", time.Since(start)).
		Int("charts", len(result.Charts)).
		Msg("analysis finished")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var apiErr *utils.ApiError
	if errors.As(err, &apiErr) {
		w.WriteHeader(apiErr.StatusCode)
		json.NewEncoder(w).Encode(map[string]string{
			"error": apiErr.Message,
			"code":  apiErr.ErrorCode,
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// HandleRoot is the service banner.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.cors(w)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "BIGPICTURE AI Agent API",
		"version": "1.0.0",
	})
}

// HandleHealth reports process liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.cors(w)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "BIGPICTURE AI Agent",
	})
}
