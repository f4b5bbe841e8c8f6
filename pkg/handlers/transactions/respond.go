package transactions

import (
	"encoding/json"
	"net/http"

	"cardledger/pkg/api"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, api.ErrorResponse{Error: message})
}

// respondInternalError is the single failure shape for store-layer
// faults. Detail stays in the log.
func respondInternalError(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, "Internal error")
}
