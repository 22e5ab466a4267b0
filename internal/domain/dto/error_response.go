package dto

import "time"

// ErrorResponse is the JSON body returned for request-level failures.
//
// The "error" key carries the human readable message; "details" carries the
// underlying error text when one is available.
type ErrorResponse struct {
	Message      string    `json:"error" example:"invalid request body"`
	ErrorDetails string    `json:"details,omitempty" example:"unexpected EOF"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-02T03:04:05Z"`
}

// Error implements the error interface so an ErrorResponse can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
