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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func permutations(vals []uint32) [][]uint32 {
	if len(vals) <= 1 {
		return [][]uint32{append([]uint32(nil), vals...)}
	}
	var out [][]uint32
	for i := range vals {
		rest := make([]uint32, 0, len(vals)-1)
		rest = append(rest, vals[:i]...)
		rest = append(rest, vals[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]uint32{vals[i]}, p...))
		}
	}
	return out
}

func TestOverlappedWindowStyle(t *testing.T) {
	assert.Equal(t, uint32(0x00CF0000), uint32(WindowStyleOverlappedWindow))

	flags := []uint32{
		WindowStyleOverlapped,
		WindowStyleCaption,
		WindowStyleSysMenu,
		WindowStyleThickFrame,
		WindowStyleMinimizeBox,
		WindowStyleMaximizeBox,
	}
	perms := permutations(flags)
	assert.Len(t, perms, 720)
	for _, p := range perms {
		var style uint32
		for _, f := range p {
			style |= f
		}
		assert.Equal(t, uint32(0x00CF0000), style)
	}
}

func TestStructLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout assertions target 64-bit platforms")
	}
	assert.Equal(t, uintptr(48), unsafe.Sizeof(Msg{}))
	assert.Equal(t, uintptr(72), unsafe.Sizeof(PaintStruct{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Rect{}))
}

func TestHandles(t *testing.T) {
	assert.False(t, InvalidHwnd.IsValid())
	assert.True(t, Hwnd(0x1000).IsValid())
	assert.False(t, Hdc(0).IsValid())
	assert.Equal(t, uintptr(32512), MakeIntResource(IdcArrow))
	assert.Equal(t, int32(10), Rect{Left: 5, Right: 15}.Width())
	assert.Equal(t, int32(-2147483648), int32(CwUseDefault))
}
