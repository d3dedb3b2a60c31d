package models

import "fmt"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// AppError is a failure carrying the HTTP status and client-facing message it
// should be rendered with. Anything else bubbling out of a handler is treated
// as an internal error.
type AppError struct {
	Status int
	Msg    string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError() *AppError {
	return &AppError{Status: 404, Msg: "not found"}
}

func NewBadRequestError() *AppError {
	return &AppError{Status: 400, Msg: "bad request"}
}

func NewInternalError(err error) *AppError {
	return &AppError{Status: 500, Msg: "internal server error", Err: err}
}
