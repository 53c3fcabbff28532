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

// WndProcFunc is the signature of the window procedure
// invoked by the system for every message dispatched
// to the window.
type WndProcFunc func(hwnd Hwnd, msg uint32, wparam, lparam uintptr) uintptr

// WndClass contains window class information. String
// fields are converted to their UTF-16 form when the
// class is submitted to the RegisterClass API function.
type WndClass struct {
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   Hinstance
	Icon       Hicon
	Cursor     Hcursor
	Background Hbrush
	MenuName   string
	ClassName  string
}

// Point defines the x- and y- coordinates of a point.
type Point struct {
	X int32
	Y int32
}

// Rect defines a rectangle by the coordinates
// of its upper-left and lower-right corners.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns the width of the rectangle.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the height of the rectangle.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Msg contains message information from the thread's message queue.
type Msg struct {
	Hwnd    Hwnd
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

// PaintStruct contains information used to paint
// the client area of a window.
type PaintStruct struct {
	Hdc       Hdc
	Erase     int32
	RcPaint   Rect
	Restore   int32
	IncUpdate int32
	Reserved  [32]byte
}

// Class styles.
const (
	// ClassStyleVRedraw redraws the entire window if a movement
	// or size adjustment changes the height of the client area.
	ClassStyleVRedraw = 0x0001
	// ClassStyleHRedraw redraws the entire window if a movement
	// or size adjustment changes the width of the client area.
	ClassStyleHRedraw = 0x0002
	// ClassStyleDblClks sends double-click messages to the window procedure.
	ClassStyleDblClks = 0x0008
	// ClassStyleOwnDC allocates a unique device context for each window in the class.
	ClassStyleOwnDC = 0x0020
	// ClassStyleNoClose disables Close on the window menu.
	ClassStyleNoClose = 0x0200
)

// Window styles.
const (
	// WindowStyleOverlapped window is an overlapped window.
	// An overlapped window has a title bar and a border.
	WindowStyleOverlapped = 0x00000000
	// WindowStyleCaption window has a title bar.
	WindowStyleCaption = 0x00C00000
	// WindowStyleSysMenu window has a window menu on its title bar.
	WindowStyleSysMenu = 0x00080000
	// WindowStyleThickFrame window has a sizing border.
	WindowStyleThickFrame = 0x00040000
	// WindowStyleMinimizeBox window has a minimize button.
	WindowStyleMinimizeBox = 0x00020000
	// WindowStyleMaximizeBox window has a maximize button.
	WindowStyleMaximizeBox = 0x00010000
	// WindowStyleVisible window is initially visible.
	WindowStyleVisible = 0x10000000

	// WindowStyleOverlappedWindow is the composite style of a regular top-level window.
	WindowStyleOverlappedWindow = WindowStyleOverlapped |
		WindowStyleCaption |
		WindowStyleSysMenu |
		WindowStyleThickFrame |
		WindowStyleMinimizeBox |
		WindowStyleMaximizeBox
)

// Window messages.
const (
	// WmDestroy is sent when a window is being destroyed.
	WmDestroy = 0x0002
	// WmPaint is sent when the system makes a request to paint a portion of the window.
	WmPaint = 0x000F
	// WmClose is the message sent to the window procedure
	// when the application is about to shut down
	WmClose = 0x0010
	// WmQuit indicates a request to terminate an application.
	WmQuit = 0x0012
	// WmKeyDown is posted when a nonsystem key is pressed.
	WmKeyDown = 0x0100
	// WmChar is posted when a WM_KEYDOWN message is translated.
	WmChar = 0x0102
	// WmMouseMove is posted when the cursor moves.
	WmMouseMove = 0x0200
	// WmUser designates the first private window message.
	WmUser = 0x0400
)

// DrawText format flags.
const (
	DrawTextCenter     = 0x00000001
	DrawTextVCenter    = 0x00000004
	DrawTextSingleLine = 0x00000020
)

// ShowWindow commands.
const (
	ShowHide        = 0
	ShowNormal      = 1
	ShowMinimized   = 2
	ShowMaximized   = 3
	ShowNoActivate  = 4
	ShowShow        = 5
	ShowDefault     = 10
	ShowCommandLast = ShowDefault
)

const (
	// CwUseDefault instructs the system to select the default
	// position for the window's upper-left corner.
	CwUseDefault = ^0x7fffffff

	// IdiApplication identifies the default application icon.
	IdiApplication = 32512
	// IdcArrow identifies the standard arrow cursor.
	IdcArrow = 32512
	// WhiteBrush identifies the white stock brush.
	WhiteBrush = 0
)
