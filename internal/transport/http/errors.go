package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeMissingField       = "missing_required_field"
	codeSessionRequired    = "session_required"
	codeReferenceTooShort  = "reference_too_short"
	codeDuplicateReference = "duplicate_reference"
	codeVerificationFailed = "verification_failed"
	codeNotificationFailed = "notification_failed"
	codeEmptyCart          = "empty_cart"
	codeInvalidID          = "invalid_id"
	codeCourseNotFound     = "course_not_found"
	codeCourseNameRequired = "course_name_required"
	codeInvalidPrice       = "invalid_price"
	codeOrderNotFound      = "order_not_found"
	codeEmailTaken         = "email_taken"
	codeInvalidCredentials = "invalid_credentials"
	codeUnauthorized       = "unauthorized"
	codeForbidden          = "forbidden"
	codeNotEnrolled        = "not_enrolled"
	codeInvalidProgress    = "invalid_progress"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
