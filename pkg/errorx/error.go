package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string

	cause error
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Wrap creates an error with the given code which still unwraps to err.
func Wrap(code Code, err error, format string, a ...any) Error {
	msg := fmt.Sprintf(format, a...)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}

	return Error{Code: code, Message: msg, cause: err}
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Unwrap() error {
	return e.cause
}

// ErrorCode is used by the json-rpc server as the error code of the response.
func (e Error) ErrorCode() int {
	return int(e.Code)
}

// CodeOf returns the code of the outermost Error in the chain of err.
func CodeOf(err error) Code {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}

	return Unknown.Code
}

func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
