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

import "github.com/thenebulo/winshell/pkg/sys"

// User32 is the set of windowing primitives the shell is built on.
// Methods that can fail return the raw result of the foreign call
// along with the calling thread's last error. Classifying the raw
// result is the caller's job, and each call site picks the failure
// convention that applies to it.
//
// sys.User32 is the native implementation.
type User32 interface {
	ModuleHandle() (uintptr, error)
	LoadIcon(inst sys.Hinstance, name uintptr) (uintptr, error)
	LoadCursor(inst sys.Hinstance, name uintptr) (uintptr, error)
	StockObject(obj int32) (uintptr, error)

	NewCallback(fn sys.WndProcFunc) uintptr
	RegisterClass(wc *sys.WndClass) (uintptr, error)

	CreateWindowEx(exStyle uint32, className, title string, style uint32, x, y, width, height int32, parent sys.Hwnd, menu sys.Hmenu, inst sys.Hinstance, param uintptr) (uintptr, error)
	ShowWindow(hwnd sys.Hwnd, cmd int32) uintptr
	UpdateWindow(hwnd sys.Hwnd) (uintptr, error)
	InvalidateRect(hwnd sys.Hwnd, rect *sys.Rect, erase bool) (uintptr, error)

	GetMessage(msg *sys.Msg, hwnd sys.Hwnd, min, max uint32) (uintptr, error)
	TranslateMessage(msg *sys.Msg) uintptr
	DispatchMessage(msg *sys.Msg) uintptr
	PostMessage(hwnd sys.Hwnd, msg uint32, wparam, lparam uintptr) (uintptr, error)
	PostQuitMessage(code int32)
	DefWindowProc(hwnd sys.Hwnd, msg uint32, wparam, lparam uintptr) uintptr

	BeginPaint(hwnd sys.Hwnd, ps *sys.PaintStruct) (uintptr, error)
	EndPaint(hwnd sys.Hwnd, ps *sys.PaintStruct) uintptr
	GetClientRect(hwnd sys.Hwnd, rect *sys.Rect) (uintptr, error)
	DrawText(hdc sys.Hdc, text string, rect *sys.Rect, format uint32) (uintptr, error)
}
