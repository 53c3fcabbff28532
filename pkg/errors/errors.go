/*
 * Copyright 2020-2021 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyClassName is returned when the window class is registered without a name
	ErrEmptyClassName = errors.New("window class name must not be empty")
	// ErrNilProcedure is returned when the window class is registered without a window procedure
	ErrNilProcedure = errors.New("window class requires a window procedure")
	// ErrUnknownClassStyle signals the class style carries bits outside the supported set
	ErrUnknownClassStyle = errors.New("window class style contains unsupported bits")
	// ErrClassAlreadyRegistered is returned when the class name was already registered in this process
	ErrClassAlreadyRegistered = errors.New("window class is already registered")
	// ErrClassNotRegistered is returned when a window is created without a registered class
	ErrClassNotRegistered = errors.New("window class is not registered")
	// ErrLoopStopped signals the message loop reached its terminal state and can't run again
	ErrLoopStopped = errors.New("message loop is stopped")
	// ErrPaintContextReleased is returned when the paint context is used after the paint ended
	ErrPaintContextReleased = errors.New("paint context is already released")
	// ErrNoWindow is returned when an operation requires a live window
	ErrNoWindow = errors.New("window is not created or already destroyed")

	// ErrUnsupportedPlatform is thrown when the native windowing system is not available
	ErrUnsupportedPlatform = func(goos string) error {
		return fmt.Errorf("winshell requires the Windows windowing system, but is running on %s", goos)
	}
)

// CallError is the failure of a foreign call. It carries the name of the
// failing operation and the platform's last-error code. Failures detected
// before reaching the system carry a zero code and the cause in Err.
type CallError struct {
	Op   string
	Code uint32
	Err  error
}

// Error returns the error message.
func (e *CallError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s failed: %s", e.Op, describe(e.Code))
}

// Unwrap returns the underlying cause, if any.
func (e *CallError) Unwrap() error { return e.Err }

// LastError returns the platform error code.
func (e *CallError) LastError() uint32 { return e.Code }

// RegistrationError is returned when the window class can't be registered.
type RegistrationError struct{ CallError }

// Error returns the error message.
func (e *RegistrationError) Error() string {
	return "window class registration: " + e.CallError.Error()
}

// CreationError is returned when the window can't be created, shown or painted.
type CreationError struct{ CallError }

// Error returns the error message.
func (e *CreationError) Error() string {
	return "window creation: " + e.CallError.Error()
}

// QueryError is returned when the client area can't be queried or drawn.
type QueryError struct{ CallError }

// Error returns the error message.
func (e *QueryError) Error() string {
	return "window query: " + e.CallError.Error()
}

// DispatchError is returned when the message loop primitives fail.
type DispatchError struct{ CallError }

// Error returns the error message.
func (e *DispatchError) Error() string {
	return "message dispatch: " + e.CallError.Error()
}

// NewRegistrationError builds a registration error from the foreign
// call error or from the cause detected before the call was made.
func NewRegistrationError(op string, err error) *RegistrationError {
	return &RegistrationError{callError(op, err)}
}

// NewCreationError builds a creation error from the foreign call error or cause.
func NewCreationError(op string, err error) *CreationError {
	return &CreationError{callError(op, err)}
}

// NewQueryError builds a query error from the foreign call error or cause.
func NewQueryError(op string, err error) *QueryError {
	return &QueryError{callError(op, err)}
}

// NewDispatchError builds a dispatch error from the foreign call error or cause.
func NewDispatchError(op string, err error) *DispatchError {
	return &DispatchError{callError(op, err)}
}

func callError(op string, err error) CallError {
	var c *CallError
	if errors.As(err, &c) {
		return *c
	}
	return CallError{Op: op, Err: err}
}

// IsRegistration returns true if the error is RegistrationError.
func IsRegistration(err error) bool {
	var e *RegistrationError
	return errors.As(err, &e)
}

// IsCreation returns true if the error is CreationError.
func IsCreation(err error) bool {
	var e *CreationError
	return errors.As(err, &e)
}

// IsQuery returns true if the error is QueryError.
func IsQuery(err error) bool {
	var e *QueryError
	return errors.As(err, &e)
}

// IsDispatch returns true if the error is DispatchError.
func IsDispatch(err error) bool {
	var e *DispatchError
	return errors.As(err, &e)
}

// Code returns the platform last-error code carried by
// any of the shell errors. The second return value is
// false if the error doesn't carry a code.
func Code(err error) (uint32, bool) {
	var e interface{ LastError() uint32 }
	if errors.As(err, &e) {
		return e.LastError(), true
	}
	return 0, false
}

// Op returns the name of the failing operation carried by any of the shell errors.
func Op(err error) string {
	var e interface{ Operation() string }
	if errors.As(err, &e) {
		return e.Operation()
	}
	return ""
}

// Operation returns the name of the failing operation.
func (e *CallError) Operation() string { return e.Op }
