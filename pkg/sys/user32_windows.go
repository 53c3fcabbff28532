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
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modgdi32    = windows.NewLazySystemDLL("gdi32.dll")

	procGetModuleHandleW = modkernel32.NewProc("GetModuleHandleW")
	procLoadIconW        = moduser32.NewProc("LoadIconW")
	procLoadCursorW      = moduser32.NewProc("LoadCursorW")
	procRegisterClassW   = moduser32.NewProc("RegisterClassW")
	procCreateWindowExW  = moduser32.NewProc("CreateWindowExW")
	procShowWindow       = moduser32.NewProc("ShowWindow")
	procUpdateWindow     = moduser32.NewProc("UpdateWindow")
	procInvalidateRect   = moduser32.NewProc("InvalidateRect")
	procGetMessageW      = moduser32.NewProc("GetMessageW")
	procTranslateMessage = moduser32.NewProc("TranslateMessage")
	procDispatchMessageW = moduser32.NewProc("DispatchMessageW")
	procPostMessageW     = moduser32.NewProc("PostMessageW")
	procPostQuitMessage  = moduser32.NewProc("PostQuitMessage")
	procDefWindowProcW   = moduser32.NewProc("DefWindowProcW")
	procBeginPaint       = moduser32.NewProc("BeginPaint")
	procEndPaint         = moduser32.NewProc("EndPaint")
	procGetClientRect    = moduser32.NewProc("GetClientRect")
	procDrawTextW        = moduser32.NewProc("DrawTextW")
	procGetStockObject   = modgdi32.NewProc("GetStockObject")
)

// wndClass is the native WNDCLASSW layout.
type wndClass struct {
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   Hinstance
	Icon       Hicon
	Cursor     Hcursor
	Background Hbrush
	MenuName   *uint16
	ClassName  *uint16
}

// User32 binds the windowing primitives exported by user32, gdi32
// and kernel32. Every method returns the raw result of the foreign
// call together with the thread's last error. No interpretation of
// the result happens here: callers classify it through Check with
// the convention that applies to the call.
type User32 struct{}

// NewUser32 returns the native windowing bindings.
func NewUser32() *User32 { return &User32{} }

// ModuleHandle returns the handle of the module that created the calling process.
func (*User32) ModuleHandle() (uintptr, error) {
	r, _, err := procGetModuleHandleW.Call(0)
	return r, err
}

// LoadIcon loads the icon resource from the module or the stock icon if the module is zero.
func (*User32) LoadIcon(inst Hinstance, name uintptr) (uintptr, error) {
	r, _, err := procLoadIconW.Call(uintptr(inst), name)
	return r, err
}

// LoadCursor loads the cursor resource from the module or the stock cursor if the module is zero.
func (*User32) LoadCursor(inst Hinstance, name uintptr) (uintptr, error) {
	r, _, err := procLoadCursorW.Call(uintptr(inst), name)
	return r, err
}

// StockObject retrieves a handle to one of the stock pens, brushes, fonts, or palettes.
func (*User32) StockObject(obj int32) (uintptr, error) {
	r, _, err := procGetStockObject.Call(uintptr(obj))
	return r, err
}

// NewCallback converts the window procedure into a function pointer
// the system can call. The number of callbacks is limited for the
// lifetime of the process, and they are never released.
func (*User32) NewCallback(fn WndProcFunc) uintptr {
	return windows.NewCallback(func(hwnd Hwnd, msg uint32, wparam, lparam uintptr) uintptr {
		return fn(hwnd, msg, wparam, lparam)
	})
}

// RegisterClass registers a window class for subsequent use in calls to CreateWindowEx.
func (*User32) RegisterClass(wc *WndClass) (uintptr, error) {
	className, err := windows.UTF16PtrFromString(wc.ClassName)
	if err != nil {
		return 0, err
	}
	native := wndClass{
		Style:      wc.Style,
		WndProc:    wc.WndProc,
		ClsExtra:   wc.ClsExtra,
		WndExtra:   wc.WndExtra,
		Instance:   wc.Instance,
		Icon:       wc.Icon,
		Cursor:     wc.Cursor,
		Background: wc.Background,
		ClassName:  className,
	}
	if wc.MenuName != "" {
		native.MenuName, err = windows.UTF16PtrFromString(wc.MenuName)
		if err != nil {
			return 0, err
		}
	}
	r, _, err := procRegisterClassW.Call(uintptr(unsafe.Pointer(&native)))
	return r, err
}

// CreateWindowEx creates an overlapped, pop-up, or child window.
func (*User32) CreateWindowEx(exStyle uint32, className, title string, style uint32, x, y, width, height int32, parent Hwnd, menu Hmenu, inst Hinstance, param uintptr) (uintptr, error) {
	class, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, err
	}
	text, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	r, _, err := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(text)),
		uintptr(style),
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		uintptr(parent),
		uintptr(menu),
		uintptr(inst),
		param,
	)
	return r, err
}

// ShowWindow sets the window's show state. The result reports whether
// the window was previously visible.
func (*User32) ShowWindow(hwnd Hwnd, cmd int32) uintptr {
	r, _, _ := procShowWindow.Call(uintptr(hwnd), uintptr(cmd))
	return r
}

// UpdateWindow sends WM_PAINT directly to the window procedure if the update region is not empty.
func (*User32) UpdateWindow(hwnd Hwnd) (uintptr, error) {
	r, _, err := procUpdateWindow.Call(uintptr(hwnd))
	return r, err
}

// InvalidateRect adds a rectangle to the window's update region. A nil
// rectangle invalidates the entire client area.
func (*User32) InvalidateRect(hwnd Hwnd, rect *Rect, erase bool) (uintptr, error) {
	var e uintptr
	if erase {
		e = 1
	}
	r, _, err := procInvalidateRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(rect)), e)
	return r, err
}

// GetMessage retrieves a message from the calling thread's message queue.
// It blocks until a message is available.
func (*User32) GetMessage(msg *Msg, hwnd Hwnd, min, max uint32) (uintptr, error) {
	r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), uintptr(hwnd), uintptr(min), uintptr(max))
	return r, err
}

// TranslateMessage translates virtual-key messages into character messages.
func (*User32) TranslateMessage(msg *Msg) uintptr {
	r, _, _ := procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
	return r
}

// DispatchMessage dispatches a message to the window procedure.
func (*User32) DispatchMessage(msg *Msg) uintptr {
	r, _, _ := procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
	return r
}

// PostMessage places a message in the message queue of the thread that created the window.
func (*User32) PostMessage(hwnd Hwnd, msg uint32, wparam, lparam uintptr) (uintptr, error) {
	r, _, err := procPostMessageW.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
	return r, err
}

// PostQuitMessage indicates to the system that the thread has made a request to terminate.
func (*User32) PostQuitMessage(code int32) {
	_, _, _ = procPostQuitMessage.Call(uintptr(code))
}

// DefWindowProc calls the default window procedure.
func (*User32) DefWindowProc(hwnd Hwnd, msg uint32, wparam, lparam uintptr) uintptr {
	r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
	return r
}

// BeginPaint prepares the window for painting and fills the paint structure.
func (*User32) BeginPaint(hwnd Hwnd, ps *PaintStruct) (uintptr, error) {
	r, _, err := procBeginPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(ps)))
	return r, err
}

// EndPaint marks the end of painting in the window.
func (*User32) EndPaint(hwnd Hwnd, ps *PaintStruct) uintptr {
	r, _, _ := procEndPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(ps)))
	return r
}

// GetClientRect retrieves the coordinates of the window's client area.
func (*User32) GetClientRect(hwnd Hwnd, rect *Rect) (uintptr, error) {
	r, _, err := procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(rect)))
	return r, err
}

// DrawText draws formatted text in the specified rectangle. The result
// is the height of the text in logical units.
func (*User32) DrawText(hdc Hdc, text string, rect *Rect, format uint32) (uintptr, error) {
	s, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return 0, err
	}
	r, _, err := procDrawTextW.Call(uintptr(hdc), uintptr(unsafe.Pointer(s)), ^uintptr(0), uintptr(unsafe.Pointer(rect)), uintptr(format))
	return r, err
}
