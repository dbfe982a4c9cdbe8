package http

import (
	"encoding/json"
	"net/http"

	apperrors "paintbooking/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WritePlain(w http.ResponseWriter, statusCode int, message string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write([]byte(message))
	return err
}

// WriteError converts an error into a plain-text HTTP response. Unknown
// errors are masked as internal failures.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	message := appErr.Message
	if appErr.Code == apperrors.CodeInternal {
		message = "Server error: " + appErr.Message
	}
	return WritePlain(w, appErr.StatusCode(), message)
}

// Redirect issues a 303 so a form POST is followed by a GET.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
