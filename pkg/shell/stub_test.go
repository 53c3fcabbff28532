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
	"syscall"

	"github.com/thenebulo/winshell/pkg/sys"
)

const (
	stubModule   = 0x400000
	stubHwnd     = sys.Hwnd(0x1000)
	stubHdc      = sys.Hdc(0x2000)
	stubCallback = 0xcafe
	stubDefault  = uintptr(0xdef)

	errorClassAlreadyExists  = syscall.Errno(1410)
	errorCannotFindWndClass  = syscall.Errno(1407)
	errorInvalidWindowHandle = syscall.Errno(1400)
	errorInvalidParameter    = syscall.Errno(87)
	errorNotEnoughMemory     = syscall.Errno(8)
)

// stubUser32 is an in-memory windowing system. Messages posted to it are
// queued and retrieved by GetMessage; dispatching calls the window
// procedure bound when the class was registered.
type stubUser32 struct {
	calls map[string]int

	queue []sys.Msg
	proc  sys.WndProcFunc

	// getMessageRet, when set, overrides the result of the retrieval call
	getMessageRet *uintptr

	failRegister    bool
	failCreate      bool
	failUpdate      bool
	failBeginPaint  bool
	failClientRect  bool
	failDraw        bool
	failModule      bool
	failPostMessage bool

	wndClass    *sys.WndClass
	createTitle string
	createClass string
	createX     int32
	createW     int32
	showCmd     int32
	drawn       []string
	drawFormat  uint32
	quitCodes   []int32
}

func newStubUser32() *stubUser32 {
	return &stubUser32{calls: make(map[string]int)}
}

func (s *stubUser32) post(msg sys.Msg) { s.queue = append(s.queue, msg) }

func (s *stubUser32) ModuleHandle() (uintptr, error) {
	s.calls["ModuleHandle"]++
	if s.failModule {
		return 0, errorInvalidParameter
	}
	return stubModule, syscall.Errno(0)
}

func (s *stubUser32) LoadIcon(inst sys.Hinstance, name uintptr) (uintptr, error) {
	s.calls["LoadIcon"]++
	return 0x10, syscall.Errno(0)
}

func (s *stubUser32) LoadCursor(inst sys.Hinstance, name uintptr) (uintptr, error) {
	s.calls["LoadCursor"]++
	return 0x20, syscall.Errno(0)
}

func (s *stubUser32) StockObject(obj int32) (uintptr, error) {
	s.calls["StockObject"]++
	return 0x30, nil
}

func (s *stubUser32) NewCallback(fn sys.WndProcFunc) uintptr {
	s.calls["NewCallback"]++
	s.proc = fn
	return stubCallback
}

func (s *stubUser32) RegisterClass(wc *sys.WndClass) (uintptr, error) {
	s.calls["RegisterClass"]++
	if s.failRegister {
		return 0, errorClassAlreadyExists
	}
	c := *wc
	s.wndClass = &c
	return 0xc001, syscall.Errno(0)
}

func (s *stubUser32) CreateWindowEx(exStyle uint32, className, title string, style uint32, x, y, width, height int32, parent sys.Hwnd, menu sys.Hmenu, inst sys.Hinstance, param uintptr) (uintptr, error) {
	s.calls["CreateWindowEx"]++
	if s.failCreate {
		return 0, errorCannotFindWndClass
	}
	s.createClass, s.createTitle = className, title
	s.createX, s.createW = x, width
	return uintptr(stubHwnd), syscall.Errno(0)
}

func (s *stubUser32) ShowWindow(hwnd sys.Hwnd, cmd int32) uintptr {
	s.calls["ShowWindow"]++
	s.showCmd = cmd
	return 0
}

// UpdateWindow sends the paint message straight to the window procedure.
func (s *stubUser32) UpdateWindow(hwnd sys.Hwnd) (uintptr, error) {
	s.calls["UpdateWindow"]++
	if s.failUpdate {
		return 0, errorInvalidWindowHandle
	}
	if s.proc != nil {
		s.proc(hwnd, sys.WmPaint, 0, 0)
	}
	return 1, syscall.Errno(0)
}

func (s *stubUser32) InvalidateRect(hwnd sys.Hwnd, rect *sys.Rect, erase bool) (uintptr, error) {
	s.calls["InvalidateRect"]++
	s.post(sys.Msg{Hwnd: hwnd, Message: sys.WmPaint})
	return 1, syscall.Errno(0)
}

func (s *stubUser32) GetMessage(msg *sys.Msg, hwnd sys.Hwnd, min, max uint32) (uintptr, error) {
	s.calls["GetMessage"]++
	if s.getMessageRet != nil {
		return *s.getMessageRet, errorInvalidWindowHandle
	}
	if len(s.queue) == 0 {
		// a real queue would block forever
		return ^uintptr(0), errorInvalidParameter
	}
	*msg = s.queue[0]
	s.queue = s.queue[1:]
	if msg.Message == sys.WmQuit {
		return 0, syscall.Errno(0)
	}
	return 1, syscall.Errno(0)
}

func (s *stubUser32) TranslateMessage(msg *sys.Msg) uintptr {
	s.calls["TranslateMessage"]++
	return 0
}

func (s *stubUser32) DispatchMessage(msg *sys.Msg) uintptr {
	s.calls["DispatchMessage"]++
	if s.proc == nil {
		return 0
	}
	return s.proc(msg.Hwnd, msg.Message, msg.WParam, msg.LParam)
}

func (s *stubUser32) PostMessage(hwnd sys.Hwnd, msg uint32, wparam, lparam uintptr) (uintptr, error) {
	s.calls["PostMessage"]++
	if s.failPostMessage {
		return 0, errorInvalidWindowHandle
	}
	s.post(sys.Msg{Hwnd: hwnd, Message: msg, WParam: wparam, LParam: lparam})
	return 1, syscall.Errno(0)
}

func (s *stubUser32) PostQuitMessage(code int32) {
	s.calls["PostQuitMessage"]++
	s.quitCodes = append(s.quitCodes, code)
	s.post(sys.Msg{Message: sys.WmQuit, WParam: uintptr(code)})
}

// DefWindowProc destroys the window on close like the system does.
func (s *stubUser32) DefWindowProc(hwnd sys.Hwnd, msg uint32, wparam, lparam uintptr) uintptr {
	s.calls["DefWindowProc"]++
	if msg == sys.WmClose && s.proc != nil {
		s.proc(hwnd, sys.WmDestroy, 0, 0)
		return 0
	}
	return stubDefault
}

func (s *stubUser32) BeginPaint(hwnd sys.Hwnd, ps *sys.PaintStruct) (uintptr, error) {
	s.calls["BeginPaint"]++
	if s.failBeginPaint {
		return 0, errorInvalidWindowHandle
	}
	ps.Hdc = stubHdc
	ps.Erase = 1
	ps.RcPaint = sys.Rect{Right: 640, Bottom: 480}
	return uintptr(stubHdc), syscall.Errno(0)
}

func (s *stubUser32) EndPaint(hwnd sys.Hwnd, ps *sys.PaintStruct) uintptr {
	s.calls["EndPaint"]++
	return 1
}

func (s *stubUser32) GetClientRect(hwnd sys.Hwnd, rect *sys.Rect) (uintptr, error) {
	s.calls["GetClientRect"]++
	if s.failClientRect {
		return 0, errorInvalidWindowHandle
	}
	*rect = sys.Rect{Right: 640, Bottom: 480}
	return 1, syscall.Errno(0)
}

func (s *stubUser32) DrawText(hdc sys.Hdc, text string, rect *sys.Rect, format uint32) (uintptr, error) {
	s.calls["DrawText"]++
	if s.failDraw {
		return 0, errorNotEnoughMemory
	}
	s.drawn = append(s.drawn, text)
	s.drawFormat = format
	return 16, syscall.Errno(0)
}
