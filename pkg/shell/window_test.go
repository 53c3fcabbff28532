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

package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	werrors "github.com/thenebulo/winshell/pkg/errors"
	"github.com/thenebulo/winshell/pkg/sys"
)

func registerClass(t *testing.T, api *stubUser32, proc Procedure) *ClassToken {
	token, err := NewRegistry(api).Register(ClassDescriptor{Name: "MainWin", Procedure: proc})
	require.NoError(t, err)
	return token
}

func TestCreateWindow(t *testing.T) {
	api := newStubUser32()
	token := registerClass(t, api, nopProcedure)
	l := NewLifecycle(api)

	hwnd, err := l.Create(token, "Go Window", sys.WindowStyleOverlappedWindow)
	require.NoError(t, err)
	assert.Equal(t, stubHwnd, hwnd)
	assert.Equal(t, "MainWin", api.createClass)
	assert.Equal(t, "Go Window", api.createTitle)
	assert.Equal(t, int32(sys.CwUseDefault), api.createX)
	assert.Equal(t, int32(sys.CwUseDefault), api.createW)

	_, err = l.Create(token, "Go Window", sys.WindowStyleOverlappedWindow, WithPosition(10, 20), WithSize(640, 480))
	require.NoError(t, err)
	assert.Equal(t, int32(10), api.createX)
	assert.Equal(t, int32(640), api.createW)
}

func TestCreateWindowWithoutClass(t *testing.T) {
	api := newStubUser32()
	hwnd, err := NewLifecycle(api).Create(nil, "Go Window", sys.WindowStyleOverlappedWindow)
	require.Error(t, err)
	assert.Equal(t, sys.InvalidHwnd, hwnd)
	assert.True(t, werrors.IsCreation(err))
	assert.True(t, errors.Is(err, werrors.ErrClassNotRegistered))
	assert.Zero(t, api.calls["CreateWindowEx"])
}

func TestCreateWindowNullHandle(t *testing.T) {
	api := newStubUser32()
	token := registerClass(t, api, nopProcedure)
	api.failCreate = true

	hwnd, err := NewLifecycle(api).Create(token, "Go Window", sys.WindowStyleOverlappedWindow)
	require.Error(t, err)
	assert.False(t, hwnd.IsValid())

	var cerr *werrors.CreationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "CreateWindowEx", cerr.Op)
	assert.Equal(t, uint32(errorCannotFindWndClass), cerr.Code)
}

func TestShowAndForcePaint(t *testing.T) {
	api := newStubUser32()
	var painted int
	token := registerClass(t, api, ProcedureFunc(func(hwnd sys.Hwnd, msg uint32, wParam, lParam uintptr) uintptr {
		if msg == sys.WmPaint {
			painted++
		}
		return 0
	}))
	l := NewLifecycle(api)

	hwnd, err := l.Create(token, "Go Window", sys.WindowStyleOverlappedWindow)
	require.NoError(t, err)

	assert.False(t, l.Show(hwnd, sys.ShowNormal))
	assert.Equal(t, int32(sys.ShowNormal), api.showCmd)

	require.NoError(t, l.ForcePaint(hwnd))
	// painting happens synchronously, not through the queue
	assert.Equal(t, 1, painted)
	assert.Empty(t, api.queue)

	api.failUpdate = true
	err = l.ForcePaint(hwnd)
	require.Error(t, err)
	assert.True(t, werrors.IsCreation(err))
	assert.Equal(t, "UpdateWindow", werrors.Op(err))
}
