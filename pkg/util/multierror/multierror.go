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

package multierror

import (
	"strings"
)

// Error aggregates multiple errors into a single error value.
type Error struct {
	errs []error
}

// Wrap combines the non-nil errors into a single error. It returns
// nil when no errors are given, and the error itself when only one
// error remains.
func Wrap(errs ...error) error {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		return &Error{errs: filtered}
	}
}

// Error returns the error messages joined by newlines.
func (e *Error) Error() string {
	var sb strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap returns the aggregated errors so they can be matched
// with errors.Is and errors.As.
func (e *Error) Unwrap() []error { return e.errs }
