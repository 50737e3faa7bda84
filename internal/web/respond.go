// Package web holds the shared HTTP plumbing: the JSON response envelope,
// the health endpoint and the SPA fallback handler.
package web

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// OK writes v as a 200 JSON response.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes the failure envelope {success:false, error:msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}

// Raw writes pre-encoded JSON bytes as-is.
func Raw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
