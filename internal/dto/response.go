package dto

import "time"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type BasicResponse struct {
	Ok        bool         `json:"ok"`
	Details   string       `json:"details"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

func NewValidationResponse(details string, errs []FieldError) BasicResponse {
	resp := NewBasicResponse(false, details)
	resp.Errors = errs
	return resp
}
