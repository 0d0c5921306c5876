package api

import (
	"net/http"

	"mmscan/internal/version"
)

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Health and readiness checks
	s.router.HandleFunc("/health", s.handleHealth)
	s.router.HandleFunc("/ready", s.handleReady)

	// Batch remediation
	s.router.HandleFunc("/remediate-mm-purchasing", s.handleRemediate)

	// Active reference tables (builtin plus any overlay)
	s.router.HandleFunc("/rules", s.handleRules)

	// Root endpoint
	s.router.HandleFunc("/", s.handleRoot)
}

// handleRoot handles requests to the root path
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// Only handle exact root path
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"name":    "mmscan HTTP API",
		"version": version.Version,
		"endpoints": []string{
			"GET /health - Health check",
			"GET /ready - Readiness check",
			"POST /remediate-mm-purchasing - Annotate a batch of ABAP units with remediation suggestions",
			"GET /rules - Active reference tables",
		},
	}

	WriteJSON(w, response, http.StatusOK)
}
