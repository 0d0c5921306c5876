package api

import (
	"net/http"
	"time"

	"mmscan/internal/version"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Rules     RulesInfo `json:"rules"`
}

// RulesInfo summarizes the reference tables the scanner was built from
type RulesInfo struct {
	Transactions    int `json:"transactions"`
	FunctionModules int `json:"functionModules"`
	ArchiveReports  int `json:"archiveReports"`
	ReadReports     int `json:"readReports"`
}

// handleHealth handles liveness checks
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	WriteJSON(w, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
	}, http.StatusOK)
}

// handleReady reports whether the scanner is usable. With no reference
// entries at all there is nothing to match and the server is not ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tables := s.scanner.Tables()
	info := RulesInfo{
		Transactions:    len(tables.Transactions),
		FunctionModules: len(tables.BAPIs) + len(tables.IDocFunctions),
		ArchiveReports:  len(tables.ArchiveReports),
		ReadReports:     len(tables.ReadReports),
	}

	status := "ready"
	code := http.StatusOK
	if info.Transactions+info.FunctionModules+info.ArchiveReports+info.ReadReports == 0 {
		status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	WriteJSON(w, ReadyResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Rules:     info,
	}, code)
}
