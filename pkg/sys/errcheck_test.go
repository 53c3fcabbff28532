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
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	werrors "github.com/thenebulo/winshell/pkg/errors"
)

func TestCheck(t *testing.T) {
	var tests = []struct {
		conv    Convention
		r       uintptr
		lastErr error
		failed  bool
		code    uint32
	}{
		{NullFailure, 0, syscall.Errno(1400), true, 1400},
		{NullFailure, 0, nil, true, 0},
		{NullFailure, 1, syscall.Errno(0), false, 0},
		{NullFailure, ^uintptr(0), syscall.Errno(5), false, 0},
		{NullFailure, 0xc001, syscall.Errno(0), false, 0},

		{MinusOneFailure, 0, syscall.Errno(0), false, 0},
		{MinusOneFailure, 1, syscall.Errno(0), false, 0},
		{MinusOneFailure, ^uintptr(0), syscall.Errno(1400), true, 1400},
		{MinusOneFailure, 0xFFFFFFFF, syscall.Errno(87), true, 87},
		{MinusOneFailure, 0xFFFFFFFE, syscall.Errno(0), false, 0},
		{MinusOneFailure, ^uintptr(0), fmt.Errorf("wrapped: %w", syscall.Errno(6)), true, 6},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d %s", i, tt.conv), func(t *testing.T) {
			r, err := Check("Op", tt.conv, tt.r, tt.lastErr)
			assert.Equal(t, tt.r, r)
			if !tt.failed {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cerr *werrors.CallError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, "Op", cerr.Op)
			assert.Equal(t, tt.code, cerr.Code)
		})
	}
}

func TestConventionsDisagreeOnZero(t *testing.T) {
	// zero is the quit result of message retrieval, not a failure
	assert.True(t, NullFailure.Failed(0))
	assert.False(t, MinusOneFailure.Failed(0))
	// and the all-ones result is a valid non-null value elsewhere
	assert.False(t, NullFailure.Failed(^uintptr(0)))
	assert.True(t, MinusOneFailure.Failed(^uintptr(0)))
	assert.True(t, Convention(99).Failed(1))
	assert.Equal(t, "unknown", Convention(99).String())
}
