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
	"runtime"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"github.com/thenebulo/winshell/pkg/errors"
	"github.com/thenebulo/winshell/pkg/sys"
)

// Config contains the window settings of the shell.
type Config struct {
	// ClassName is the name the window class is registered with.
	ClassName string
	// Title is the window title.
	Title string
	// Text is the text drawn in the center of the client area.
	Text string
	// Width and Height set the window size. Zero values defer
	// to the system default size.
	Width  int32
	Height int32
	// ShowCommand controls how the window is shown.
	ShowCommand int32
}

// Option tweaks the shell collaborators.
type Option func(*Shell)

// WithReporter sets the reporter for window procedure failures.
func WithReporter(reporter Reporter) Option {
	return func(s *Shell) {
		s.reporter = reporter
	}
}

// WithPainter replaces the centered text painter.
func WithPainter(painter Painter) Option {
	return func(s *Shell) {
		s.painter = painter
	}
}

// Shell is the native window shell. It registers the window class,
// creates and shows the window, and runs the message loop on the
// calling thread. SetText, Close and PostQuit are safe to call from
// other goroutines while the loop is running.
type Shell struct {
	api       User32
	config    Config
	registry  *Registry
	lifecycle *Lifecycle
	loop      *Loop
	proc      *TextProcedure
	painter   Painter
	reporter  Reporter

	mu   sync.RWMutex
	text string

	hwnd atomic.Uintptr
}

// wmQuitRequest asks the window procedure to post the quit
// message with the exit code carried in wParam.
const wmQuitRequest = sys.WmUser + 1

// New creates a new shell on top of the windowing primitives.
func New(api User32, config Config, options ...Option) *Shell {
	s := &Shell{
		api:       api,
		config:    config,
		registry:  NewRegistry(api),
		lifecycle: NewLifecycle(api),
		loop:      NewLoop(api),
		text:      config.Text,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.painter == nil {
		s.painter = NewTextPainter(s.Text)
	}
	s.proc = NewTextProcedure(api, s.painter, s.reporter)
	return s
}

// Run registers the window class, creates the window, shows and paints
// it, and pumps messages until the quit message arrives. The returned
// exit code is the one carried by the quit message. Registration and
// creation failures are returned before the loop starts.
func (s *Shell) Run() (ExitCode, error) {
	// all UI operations must happen on the
	// thread that created the window
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	token, err := s.registry.Register(ClassDescriptor{
		Name:      s.config.ClassName,
		Style:     ClassStyles(ClassStyleHRedraw, ClassStyleVRedraw),
		Procedure: s,
	})
	if err != nil {
		return 0, err
	}

	var opts []WindowOption
	if s.config.Width > 0 && s.config.Height > 0 {
		opts = append(opts, WithSize(s.config.Width, s.config.Height))
	}
	hwnd, err := s.lifecycle.Create(token, s.config.Title, sys.WindowStyleOverlappedWindow, opts...)
	if err != nil {
		return 0, err
	}
	s.hwnd.Store(uintptr(hwnd))

	cmd := s.config.ShowCommand
	if cmd == 0 {
		cmd = sys.ShowNormal
	}
	s.lifecycle.Show(hwnd, cmd)
	if err := s.lifecycle.ForcePaint(hwnd); err != nil {
		return 0, err
	}

	log.Infof("window %q is up. Entering message loop", s.config.Title)

	return s.loop.Run()
}

// Handle is the window procedure of the shell window. It forgets the
// window handle on destroy, posts the quit message on quit requests
// and delegates anything else to the text procedure.
func (s *Shell) Handle(hwnd sys.Hwnd, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case sys.WmDestroy:
		s.hwnd.Store(uintptr(sys.InvalidHwnd))
	case wmQuitRequest:
		s.api.PostQuitMessage(int32(wParam))
		return 0
	}
	return s.proc.Handle(hwnd, msg, wParam, lParam)
}

// Hwnd returns the shell window handle or sys.InvalidHwnd if the
// window is not created yet or was destroyed.
func (s *Shell) Hwnd() sys.Hwnd { return sys.Hwnd(s.hwnd.Load()) }

// Loop returns the message loop.
func (s *Shell) Loop() *Loop { return s.loop }

// Text returns the text drawn in the client area.
func (s *Shell) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// SetText replaces the drawn text and invalidates the client area
// so the window is repainted on the next loop iteration.
func (s *Shell) SetText(text string) error {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
	hwnd := s.Hwnd()
	if !hwnd.IsValid() {
		return nil
	}
	ret, lastErr := s.api.InvalidateRect(hwnd, nil, true)
	if _, err := sys.Check("InvalidateRect", sys.NullFailure, ret, lastErr); err != nil {
		return errors.NewQueryError("InvalidateRect", err)
	}
	return nil
}

// Close asks the window to close. The default window procedure destroys
// the window, which in turn posts the quit message with exit code zero.
func (s *Shell) Close() error {
	hwnd := s.Hwnd()
	if !hwnd.IsValid() {
		return errors.NewDispatchError("PostMessage", errors.ErrNoWindow)
	}
	ret, lastErr := s.api.PostMessage(hwnd, sys.WmClose, 0, 0)
	if _, err := sys.Check("PostMessage", sys.NullFailure, ret, lastErr); err != nil {
		return errors.NewDispatchError("PostMessage", err)
	}
	return nil
}

// PostQuit stops the message loop with the exit code. The request goes
// through the window queue and the quit message is posted from the loop
// thread, so input and paint messages queued before it are still
// dispatched. It fails if the window doesn't exist.
func (s *Shell) PostQuit(code ExitCode) error {
	hwnd := s.Hwnd()
	if !hwnd.IsValid() {
		return errors.NewDispatchError("PostMessage", errors.ErrNoWindow)
	}
	ret, lastErr := s.api.PostMessage(hwnd, wmQuitRequest, uintptr(code), 0)
	if _, err := sys.Check("PostMessage", sys.NullFailure, ret, lastErr); err != nil {
		return errors.NewDispatchError("PostMessage", err)
	}
	return nil
}
