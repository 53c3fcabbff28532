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
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap())
	assert.NoError(t, Wrap(nil, nil))
	assert.Equal(t, io.EOF, Wrap(nil, io.EOF))

	err := Wrap(io.EOF, nil, os.ErrNotExist)
	require.Error(t, err)
	assert.Equal(t, "EOF\nfile does not exist", err.Error())
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, os.ErrClosed))
}
