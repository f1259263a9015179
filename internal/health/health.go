package health

import (
	"encoding/json"
	"log"
	"net/http"
)

const Message = "My Compass API is running successfully!"

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handler is the liveness probe. It does no I/O.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(healthResp{Status: "ok", Message: Message}); err != nil {
		log.Printf("[WARN] encode response: %v", err)
	}
}
