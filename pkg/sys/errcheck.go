/*
 * Copyright 2021-2022 by Nedim Sabic Sabic
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

package sys

import (
	"errors"
	"syscall"

	werrors "github.com/thenebulo/winshell/pkg/errors"
)

// Convention determines how the raw result of a foreign
// call is classified into success or failure. Each call
// site declares its convention explicitly.
type Convention uint8

const (
	// NullFailure treats the null/zero result as failure.
	NullFailure Convention = iota
	// MinusOneFailure treats the all-ones BOOL result as failure.
	// Zero is a valid result under this convention. It is used
	// for message retrieval where zero signals the quit message.
	MinusOneFailure
)

// String returns the convention name.
func (c Convention) String() string {
	switch c {
	case NullFailure:
		return "null"
	case MinusOneFailure:
		return "minus-one"
	default:
		return "unknown"
	}
}

// Failed reports whether the raw result is a failure under this convention.
func (c Convention) Failed(r uintptr) bool {
	switch c {
	case NullFailure:
		return r == 0
	case MinusOneFailure:
		// BOOL is 32 bits wide. Only the low half of the return
		// register is meaningful, so compare after truncation.
		return int32(r) == -1
	default:
		return true
	}
}

// Check classifies the raw result of the op foreign call under the given
// convention. On success, the raw result is returned unchanged. On failure,
// the returned error is a *errors.CallError carrying the op name and the
// thread's last error code.
func Check(op string, conv Convention, r uintptr, lastErr error) (uintptr, error) {
	if !conv.Failed(r) {
		return r, nil
	}
	return r, &werrors.CallError{Op: op, Code: Errno(lastErr)}
}

// Errno extracts the platform error code from the last error
// value reported by a foreign call. It returns zero if the
// error is nil or doesn't carry an error number.
func Errno(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
