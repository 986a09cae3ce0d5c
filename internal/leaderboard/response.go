package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the JSON envelope of every reply.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// apiError carries an HTTP status to the client.
type apiError struct {
	status int
	msg    string
}

func (e apiError) Error() string { return e.msg }

func badRequest(msg string) error { return apiError{status: http.StatusBadRequest, msg: msg} }

func notFound(msg string) error { return apiError{status: http.StatusNotFound, msg: msg} }

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// writeError reports err to the client. Errors that are not apiErrors
// are hidden behind a generic 500.
func writeError(w http.ResponseWriter, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"
	var apiErr apiError
	if errors.As(err, &apiErr) {
		status, msg = apiErr.status, apiErr.msg
	}
	writeJSON(w, status, Response{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
