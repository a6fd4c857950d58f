package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Generation
	mux.HandleFunc("/api/generate", s.app.GenerateHandler.GenerateHandler) // POST - run the pipeline

	// API routes - Stored analyses
	mux.HandleFunc("/api/analyses", s.app.AnalysisHandler.ListHandler) // GET (list)
	mux.HandleFunc("/api/analyses/", s.handleAnalysisRoutes)           // GET/DELETE /{id} and subpaths

	// API routes - System
	mux.HandleFunc("/api/status", s.app.StatusHandler.GetStatusHandler)
	mux.HandleFunc("/api/retention/cleanup", s.app.StatusHandler.TriggerCleanupHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// handleAnalysisRoutes routes /api/analyses/{id} and its subpaths
func (s *Server) handleAnalysisRoutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/analyses/")
	if path == "" {
		http.Error(w, "Analysis ID is required", http.StatusBadRequest)
		return
	}

	// GET /api/analyses/{id}/download
	if r.Method == "GET" && strings.HasSuffix(path, "/download") {
		id := strings.TrimSuffix(path, "/download")
		s.app.AnalysisHandler.DownloadHandler(w, r, id)
		return
	}

	// GET /api/analyses/{id}/preview
	if r.Method == "GET" && strings.HasSuffix(path, "/preview") {
		id := strings.TrimSuffix(path, "/preview")
		s.app.AnalysisHandler.PreviewHandler(w, r, id)
		return
	}

	if strings.Contains(path, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	RouteByMethod(w, r, MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) {
			s.app.AnalysisHandler.GetHandler(w, r, path)
		},
		"DELETE": func(w http.ResponseWriter, r *http.Request) {
			s.app.AnalysisHandler.DeleteHandler(w, r, path)
		},
	})
}
