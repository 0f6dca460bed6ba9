package errors

import (
	"errors"
	"reflect"
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

var ErrUnsupported = errors.ErrUnsupported

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	}
	return nil
}

// New wraps obj with a stack trace.
// Unlike github.com/go-errors/errors.New() it returns nil for nil.
func New(obj any) *Error {
	if obj == nil {
		return nil
	}
	// keep the origin of the failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

// Wrap returns nil for a nil error, so it can be used on the return value
// of any call without a preceding nil check.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(err, 1)
}

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

type Error = errorsGo.Error

func Errorf(format string, a ...any) *Error { return errorsGo.Errorf(format, a...) }

func WrapPrefix(e any, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(`nil receiver or struct field`, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 3, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	for i := range args {
		if isNil(args[i]) {
			return errMsg(msg, skip)
		}
	}
	if len(args) == 0 {
		return errMsg(msg, skip)
	}
	return nil
}

// isNil also catches typed nil pointers stored in interfaces
func isNil(arg any) bool {
	if arg == nil {
		return true
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func errMsg(msg string, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return errorsGo.Wrap(msg, skip)
	}
	return errorsGo.Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}
