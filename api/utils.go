package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// degradedHeader carries the degradation reason when an upstream was down
// and a fallback payload was served. The body stays a valid, well-typed
// response either way.
const degradedHeader = "X-Degraded-Reason"

// getIntParam retrieves an integer query parameter with default value and optional range validation
func getIntParam(r *http.Request, key string, defaultVal int, minVal, maxVal *int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}

	if minVal != nil && val < *minVal {
		return defaultVal
	}
	if maxVal != nil && val > *maxVal {
		return defaultVal
	}

	return val
}

// writeJSON serializes v with the content type set
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// markDegraded records the degradation reason on the response
func markDegraded(w http.ResponseWriter, reason string) {
	if reason != "" {
		w.Header().Set(degradedHeader, reason)
	}
}

// respondWithError logs the error and sends a JSON error response
// Use this to avoid exposing internal errors while still logging them
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("API Error [%d]: %s - %v", code, message, err)
	} else {
		log.Printf("API Error [%d]: %s", code, message)
	}
	http.Error(w, message, code)
}
