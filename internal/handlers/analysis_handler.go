package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/interfaces"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// AnalysisHandler serves stored analyses: listing, retrieval, markdown
// download, and HTML preview.
type AnalysisHandler struct {
	storage  interfaces.AnalysisStorage
	markdown goldmark.Markdown
	logger   arbor.ILogger
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(storage interfaces.AnalysisStorage, logger arbor.ILogger) *AnalysisHandler {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	return &AnalysisHandler{
		storage:  storage,
		markdown: md,
		logger:   logger,
	}
}

// ListHandler handles GET /api/analyses
func (h *AnalysisHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	page, pageSize := GetPaginationParams(r)

	total, err := h.storage.CountAnalyses()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to count analyses")
		return
	}

	analyses, err := h.storage.ListAnalyses(page*pageSize, pageSize)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"analyses":   analyses,
		"pagination": NewPagination(page, pageSize, total),
	})
}

// GetHandler handles GET /api/analyses/{id}
func (h *AnalysisHandler) GetHandler(w http.ResponseWriter, r *http.Request, id string) {
	analysis, err := h.storage.GetAnalysis(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Analysis not found")
		return
	}
	WriteJSON(w, http.StatusOK, analysis)
}

// DownloadHandler handles GET /api/analyses/{id}/download, serving the raw
// document as a UTF-8 markdown attachment.
func (h *AnalysisHandler) DownloadHandler(w http.ResponseWriter, r *http.Request, id string) {
	analysis, err := h.storage.GetAnalysis(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Analysis not found")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "README.md"))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(analysis.Markdown))
}

// PreviewHandler handles GET /api/analyses/{id}/preview, rendering the
// document to HTML for display.
func (h *AnalysisHandler) PreviewHandler(w http.ResponseWriter, r *http.Request, id string) {
	analysis, err := h.storage.GetAnalysis(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Analysis not found")
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(analysis.Markdown), &buf); err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Markdown rendering failed")
		WriteError(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// DeleteHandler handles DELETE /api/analyses/{id}
func (h *AnalysisHandler) DeleteHandler(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.storage.DeleteAnalysis(id); err != nil {
		WriteError(w, http.StatusNotFound, "Analysis not found")
		return
	}
	WriteSuccess(w, "Analysis deleted")
}
