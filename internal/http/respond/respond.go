// Package respond writes the uniform API envelope every handler returns:
// {"success": bool, "message": string, "data": ..., "errors": [...]}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

func Fail(w http.ResponseWriter, status int, message string, errs ...string) {
	write(w, status, Envelope{Success: false, Message: message, Errors: errs})
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
