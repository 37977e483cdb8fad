package errors

import (
	"fmt"
)

type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode defines the code used when none is given. It is set to 500:
// a storage or environment failure, as opposed to a rejected transition from
// the registry taxonomy.
var DefaultCode = 500

type registryError struct {
	code  int
	msg   string
	cause *registryError
}

func (err *registryError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *registryError) Code() int {
	return err.code
}

func (err *registryError) Message() string {
	return err.msg
}

func (err *registryError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*registryError); ok {
			err.code = code
			return err
		}

		// default
		return &registryError{
			msg:   err.Error(),
			code:  code,
			cause: nil,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	var regCause *registryError
	switch cause := cause.(type) {
	case *registryError:
		regCause = cause
	default:
		regCause = &registryError{msg: cause.Error(), code: DefaultCode, cause: nil}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if regErr, ok := err.(*registryError); ok {
			regErr.cause = regCause
			return regErr
		}

		return &registryError{
			msg:   err.Error(),
			code:  regCause.code,
			cause: regCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &registryError{
		msg:   msg,
		code:  DefaultCode,
		cause: nil,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// CodeOf extracts the code of an error, falling back to DefaultCode for
// errors that did not come out of this package.
func CodeOf(err error) int {
	if err, ok := err.(Error); ok {
		return err.Code()
	}
	return DefaultCode
}

// Is reports whether err carries the given code.
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}
