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

package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	v, err := New("", "", "")
	require.NoError(t, err)
	assert.True(t, v.IsDev())
	assert.Equal(t, "winshell/dev", v.ProductToken())

	v, err = New("1.2.3", "c0ffee", "2026-10-18")
	require.NoError(t, err)
	assert.False(t, v.IsDev())
	assert.Equal(t, "1.2.3", v.String())

	var b bytes.Buffer
	v.Render(&b)
	assert.Contains(t, b.String(), "1.2.3")
	assert.Contains(t, b.String(), "c0ffee")

	_, err = New("one.two", "", "")
	require.Error(t, err)
}
