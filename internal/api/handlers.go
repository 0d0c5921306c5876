package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mmscan/internal/errors"
)

// handleRemediate annotates a batch of ABAP units. The request body is a
// JSON array of units; the response is the same array with each unit's
// remediation suggestions merged in under mb_txn_usage. Units are
// independent, so a batch is processed unit by unit with no shared state.
func (s *Server) handleRemediate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var units []Unit
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&units); err != nil {
		BadRequest(w, "request body must be a JSON array of units")
		return
	}

	maxBytes := s.cfg.Scan.MaxUnitBytes
	results := make([]AnnotatedUnit, 0, len(units))
	for i, u := range units {
		if maxBytes > 0 && len(u.Code) > maxBytes {
			err := errors.New(errors.UnitTooLarge,
				fmt.Sprintf("unit %d exceeds the %d byte limit", i, maxBytes), nil)
			WriteError(w, err, MapErrorToStatus(errors.UnitTooLarge))
			return
		}

		results = append(results, AnnotatedUnit{
			Unit:       u,
			MbTxnUsage: s.scanner.Scan(u.Code),
		})
	}

	s.logger.Debug("Batch remediated", map[string]interface{}{
		"units":     len(results),
		"requestID": GetRequestID(r.Context()),
	})

	WriteJSON(w, results, http.StatusOK)
}

// handleRules returns the reference tables the scanner was built from.
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	WriteJSON(w, s.scanner.Tables(), http.StatusOK)
}
