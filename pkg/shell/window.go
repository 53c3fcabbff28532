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
	log "github.com/sirupsen/logrus"
	"github.com/thenebulo/winshell/pkg/errors"
	"github.com/thenebulo/winshell/pkg/sys"
)

// WindowOption alters how the window is created.
type WindowOption func(*windowOpts)

type windowOpts struct {
	exStyle uint32
	x, y    int32
	width   int32
	height  int32
	parent  sys.Hwnd
	menu    sys.Hmenu
	param   uintptr
}

// WithPosition places the window's upper-left corner at the given coordinates.
func WithPosition(x, y int32) WindowOption {
	return func(o *windowOpts) {
		o.x, o.y = x, y
	}
}

// WithSize sets the window width and height.
func WithSize(width, height int32) WindowOption {
	return func(o *windowOpts) {
		o.width, o.height = width, height
	}
}

// WithParent sets the parent or owner window.
func WithParent(parent sys.Hwnd) WindowOption {
	return func(o *windowOpts) {
		o.parent = parent
	}
}

// WithMenu attaches the menu to the window.
func WithMenu(menu sys.Hmenu) WindowOption {
	return func(o *windowOpts) {
		o.menu = menu
	}
}

// WithInstanceData passes the value to the window through the WM_CREATE message.
func WithInstanceData(param uintptr) WindowOption {
	return func(o *windowOpts) {
		o.param = param
	}
}

// WithExStyle sets the extended window style.
func WithExStyle(style uint32) WindowOption {
	return func(o *windowOpts) {
		o.exStyle = style
	}
}

// Lifecycle creates windows of registered classes and brings them on screen.
// Windows must go through Create, Show and ForcePaint, in that order, before
// the message loop starts.
type Lifecycle struct {
	api User32
}

// NewLifecycle creates a new window lifecycle manager.
func NewLifecycle(api User32) *Lifecycle {
	return &Lifecycle{api: api}
}

// Create creates the window of the registered class. Position and size
// fall back to the system default placement when not given. It fails
// with *errors.CreationError if the token is nil or the system doesn't
// return a window handle.
func (l *Lifecycle) Create(token *ClassToken, title string, style uint32, opts ...WindowOption) (sys.Hwnd, error) {
	if token == nil {
		return sys.InvalidHwnd, errors.NewCreationError("CreateWindowEx", errors.ErrClassNotRegistered)
	}
	o := windowOpts{
		x:      sys.CwUseDefault,
		y:      sys.CwUseDefault,
		width:  sys.CwUseDefault,
		height: sys.CwUseDefault,
	}
	for _, opt := range opts {
		opt(&o)
	}
	ret, lastErr := l.api.CreateWindowEx(
		o.exStyle,
		token.Name(),
		title,
		style,
		o.x,
		o.y,
		o.width,
		o.height,
		o.parent,
		o.menu,
		token.Instance(),
		o.param,
	)
	hwnd, err := sys.Check("CreateWindowEx", sys.NullFailure, ret, lastErr)
	if err != nil {
		return sys.InvalidHwnd, errors.NewCreationError("CreateWindowEx", err)
	}
	log.WithFields(log.Fields{
		"class": token.Name(),
		"title": title,
		"hwnd":  hwnd,
	}).Debug("created window")
	return sys.Hwnd(hwnd), nil
}

// Show sets the window's show state. It returns true if the window was
// previously visible.
func (l *Lifecycle) Show(hwnd sys.Hwnd, cmd int32) bool {
	return l.api.ShowWindow(hwnd, cmd) != 0
}

// ForcePaint paints the window synchronously by sending WM_PAINT straight
// to the window procedure, bypassing the message queue.
func (l *Lifecycle) ForcePaint(hwnd sys.Hwnd) error {
	ret, lastErr := l.api.UpdateWindow(hwnd)
	if _, err := sys.Check("UpdateWindow", sys.NullFailure, ret, lastErr); err != nil {
		return errors.NewCreationError("UpdateWindow", err)
	}
	return nil
}
