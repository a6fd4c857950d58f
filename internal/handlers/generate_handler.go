package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/models"
	"github.com/ternarybob/gitscribe/internal/services/generator"
)

// GenerateHandler handles README generation requests
type GenerateHandler struct {
	service  *generator.Service
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(service *generator.Service, logger arbor.ILogger) *GenerateHandler {
	return &GenerateHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// GenerateRequest is the POST /api/generate payload.
type GenerateRequest struct {
	URL string `json:"url" validate:"required,min=3"`
}

// GenerateHandler handles POST /api/generate
func (h *GenerateHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Field 'url' is required")
		return
	}

	analysis, err := h.service.Generate(r.Context(), req.URL)
	if err != nil {
		h.writeGenerateError(w, req.URL, err)
		return
	}

	WriteJSON(w, http.StatusOK, analysis)
}

// writeGenerateError maps pipeline errors to HTTP status codes: 400 for a
// malformed reference, 404 for a missing repository, 502 for upstream
// failures.
func (h *GenerateHandler) writeGenerateError(w http.ResponseWriter, url string, err error) {
	h.logger.Warn().
		Err(err).
		Str("url", url).
		Msg("README generation failed")

	switch {
	case errors.Is(err, models.ErrInvalidRepositoryReference):
		WriteError(w, http.StatusBadRequest, "Invalid repository reference. Expected a GitHub URL or owner/repo.")
	case errors.Is(err, models.ErrRepositoryNotFound):
		WriteError(w, http.StatusNotFound, "Repository not found or not accessible.")
	default:
		WriteError(w, http.StatusBadGateway, "Failed to analyze repository. Please try again.")
	}
}
