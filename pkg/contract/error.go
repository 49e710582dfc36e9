package contract

import (
	"fmt"
	"net/http"
	"strings"
)

type ErrorCode string

const (
	InternalError           ErrorCode = "INTERNAL_ERROR"
	BadRequest              ErrorCode = "BAD_REQUEST"
	InvalidParameterValue   ErrorCode = "INVALID_PARAMETER_VALUE"
	ResourceDoesNotExist    ErrorCode = "RESOURCE_DOES_NOT_EXIST"
	EndpointNotFound        ErrorCode = "ENDPOINT_NOT_FOUND"
	Unauthenticated         ErrorCode = "UNAUTHENTICATED"
	ServiceUnderMaintenance ErrorCode = "SERVICE_UNDER_MAINTENANCE"
)

type Error struct {
	Code    ErrorCode `json:"error_code"`
	Message string    `json:"message"`
	Inner   error     `json:"-"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewErrorWith(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Inner:   err,
	}
}

// NewDatabaseError reports a data-access failure, echoing the underlying cause to the caller.
func NewDatabaseError(err error) *Error {
	return NewErrorWith(InternalError, fmt.Sprintf("Database error: %v", err), err)
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Inner != nil && !strings.Contains(e.Message, e.Inner.Error()) {
		return fmt.Sprintf("%s: %s", msg, e.Inner)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Inner
}

//nolint:cyclop
func (e *Error) StatusCode() int {
	switch e.Code {
	case BadRequest, InvalidParameterValue:
		return http.StatusBadRequest
	case ResourceDoesNotExist, EndpointNotFound:
		return http.StatusNotFound
	case Unauthenticated:
		return http.StatusUnauthorized
	case ServiceUnderMaintenance:
		return http.StatusServiceUnavailable
	case InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
