package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pagelens/pagelens/internal/domain"
)

// Auditor is what the handler needs from the application layer.
type Auditor interface {
	Run(ctx context.Context, url string) (*domain.Report, error)
}

type Handler struct {
	auditor Auditor
}

func NewHandler(auditor Auditor) *Handler {
	return &Handler{auditor: auditor}
}

type auditRequest struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateAudit runs one audit synchronously and returns the report.
func (h *Handler) CreateAudit(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"url\": \"...\"}"})
		return
	}

	rep, err := h.auditor.Run(r.Context(), req.URL)
	if err != nil {
		var navErr *domain.NavigationError
		if errors.As(err, &navErr) {
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: navErr.Error()})
			return
		}
		log.Error().Err(err).Msg("audit failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
