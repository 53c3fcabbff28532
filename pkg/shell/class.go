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

// ClassStyle is the bit set of window class styles.
type ClassStyle uint32

const (
	// ClassStyleVRedraw redraws the window when the client area height changes.
	ClassStyleVRedraw ClassStyle = sys.ClassStyleVRedraw
	// ClassStyleHRedraw redraws the window when the client area width changes.
	ClassStyleHRedraw ClassStyle = sys.ClassStyleHRedraw
	// ClassStyleDblClks delivers double-click messages.
	ClassStyleDblClks ClassStyle = sys.ClassStyleDblClks
	// ClassStyleOwnDC gives every window of the class its own device context.
	ClassStyleOwnDC ClassStyle = sys.ClassStyleOwnDC
	// ClassStyleNoClose disables Close on the window menu.
	ClassStyleNoClose ClassStyle = sys.ClassStyleNoClose

	classStyleMask = ClassStyleVRedraw | ClassStyleHRedraw | ClassStyleDblClks | ClassStyleOwnDC | ClassStyleNoClose
)

// ClassStyles composes the class style from the individual style bits.
func ClassStyles(bits ...ClassStyle) ClassStyle {
	var s ClassStyle
	for _, b := range bits {
		s |= b
	}
	return s
}

// ClassDescriptor describes the window class. Zero-valued module, icon,
// cursor and background handles are resolved to the process module and
// the stock application icon, arrow cursor and white brush respectively.
type ClassDescriptor struct {
	Name       string
	Style      ClassStyle
	Procedure  Procedure
	ClsExtra   int32
	WndExtra   int32
	Instance   sys.Hinstance
	Icon       sys.Hicon
	Cursor     sys.Hcursor
	Background sys.Hbrush
	MenuName   string
}

// ClassToken is the proof of a registered window class. It is
// required to create windows of that class.
type ClassToken struct {
	name     string
	atom     sys.Atom
	instance sys.Hinstance
}

// Name returns the class name.
func (t *ClassToken) Name() string { return t.name }

// Atom returns the class atom assigned by the system.
func (t *ClassToken) Atom() sys.Atom { return t.atom }

// Instance returns the module handle the class was registered with.
func (t *ClassToken) Instance() sys.Hinstance { return t.instance }

// Registry registers window classes. Each class name is registered at
// most once during the registry's lifetime, and registered classes
// live until the process exits.
type Registry struct {
	api        User32
	registered map[string]*ClassToken
	// spare holds the callback of the last rejected
	// registration. Native callbacks are never freed.
	spare *procThunk
}

// procThunk routes the native window procedure callback to the
// procedure of the class it was registered with.
type procThunk struct {
	proc     Procedure
	callback uintptr
}

func (t *procThunk) handle(hwnd sys.Hwnd, msg uint32, wParam, lParam uintptr) uintptr {
	return t.proc.Handle(hwnd, msg, wParam, lParam)
}

// NewRegistry creates a new window class registry.
func NewRegistry(api User32) *Registry {
	return &Registry{api: api, registered: make(map[string]*ClassToken)}
}

// Register validates the descriptor and submits the class to the
// windowing system. It fails with *errors.RegistrationError if the
// descriptor is invalid, the name is already registered, or the
// system rejects the class.
func (r *Registry) Register(desc ClassDescriptor) (*ClassToken, error) {
	if desc.Name == "" {
		return nil, errors.NewRegistrationError("RegisterClass", errors.ErrEmptyClassName)
	}
	if desc.Procedure == nil {
		return nil, errors.NewRegistrationError("RegisterClass", errors.ErrNilProcedure)
	}
	if desc.Style&^classStyleMask != 0 {
		return nil, errors.NewRegistrationError("RegisterClass", errors.ErrUnknownClassStyle)
	}
	if _, ok := r.registered[desc.Name]; ok {
		return nil, errors.NewRegistrationError("RegisterClass", errors.ErrClassAlreadyRegistered)
	}

	if err := r.resolveStockResources(&desc); err != nil {
		return nil, err
	}

	thunk := r.spare
	if thunk == nil {
		thunk = &procThunk{}
		thunk.callback = r.api.NewCallback(thunk.handle)
	}
	thunk.proc = desc.Procedure
	wc := &sys.WndClass{
		Style:      uint32(desc.Style),
		WndProc:    thunk.callback,
		ClsExtra:   desc.ClsExtra,
		WndExtra:   desc.WndExtra,
		Instance:   desc.Instance,
		Icon:       desc.Icon,
		Cursor:     desc.Cursor,
		Background: desc.Background,
		MenuName:   desc.MenuName,
		ClassName:  desc.Name,
	}
	ret, lastErr := r.api.RegisterClass(wc)
	atom, err := sys.Check("RegisterClass", sys.NullFailure, ret, lastErr)
	if err != nil {
		r.spare = thunk
		return nil, errors.NewRegistrationError("RegisterClass", err)
	}
	r.spare = nil

	token := &ClassToken{name: desc.Name, atom: sys.Atom(atom), instance: desc.Instance}
	r.registered[desc.Name] = token

	log.WithFields(log.Fields{
		"class": desc.Name,
		"atom":  atom,
		"style": desc.Style,
	}).Debug("registered window class")

	return token, nil
}

// IsRegistered determines if the class name was registered through this registry.
func (r *Registry) IsRegistered(name string) bool {
	_, ok := r.registered[name]
	return ok
}

func (r *Registry) resolveStockResources(desc *ClassDescriptor) error {
	if desc.Instance == 0 {
		ret, lastErr := r.api.ModuleHandle()
		mod, err := sys.Check("GetModuleHandle", sys.NullFailure, ret, lastErr)
		if err != nil {
			return errors.NewRegistrationError("GetModuleHandle", err)
		}
		desc.Instance = sys.Hinstance(mod)
	}
	if desc.Icon == 0 {
		ret, lastErr := r.api.LoadIcon(0, sys.MakeIntResource(sys.IdiApplication))
		icon, err := sys.Check("LoadIcon", sys.NullFailure, ret, lastErr)
		if err != nil {
			return errors.NewRegistrationError("LoadIcon", err)
		}
		desc.Icon = sys.Hicon(icon)
	}
	if desc.Cursor == 0 {
		ret, lastErr := r.api.LoadCursor(0, sys.MakeIntResource(sys.IdcArrow))
		cursor, err := sys.Check("LoadCursor", sys.NullFailure, ret, lastErr)
		if err != nil {
			return errors.NewRegistrationError("LoadCursor", err)
		}
		desc.Cursor = sys.Hcursor(cursor)
	}
	if desc.Background == 0 {
		ret, lastErr := r.api.StockObject(sys.WhiteBrush)
		brush, err := sys.Check("GetStockObject", sys.NullFailure, ret, lastErr)
		if err != nil {
			return errors.NewRegistrationError("GetStockObject", err)
		}
		desc.Background = sys.Hbrush(brush)
	}
	return nil
}
