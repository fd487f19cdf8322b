package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// Recoverer converts panics into a generic JSON 500 instead of letting the
// connection die mid-request.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic recovered: %v request_id=%s", rec, r.Header.Get("X-Request-ID"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error":   "Internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
