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
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/thenebulo/winshell/pkg/errors"
	"github.com/thenebulo/winshell/pkg/sys"
)

// Procedure is the window procedure. The message loop invokes it
// synchronously for every message dispatched to the window.
type Procedure interface {
	Handle(hwnd sys.Hwnd, msg uint32, wParam, lParam uintptr) uintptr
}

// ProcedureFunc adapts the function to the Procedure interface.
type ProcedureFunc func(hwnd sys.Hwnd, msg uint32, wParam, lParam uintptr) uintptr

// Handle calls f(hwnd, msg, wParam, lParam).
func (f ProcedureFunc) Handle(hwnd sys.Hwnd, msg uint32, wParam, lParam uintptr) uintptr {
	return f(hwnd, msg, wParam, lParam)
}

// Reporter receives the failures that happen inside the window
// procedure. They can't be returned to the message loop.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts the function to the Reporter interface.
type ReporterFunc func(err error)

// Report calls f(err).
func (f ReporterFunc) Report(err error) { f(err) }

type logReporter struct{}

func (logReporter) Report(err error) {
	code, _ := errors.Code(err)
	log.WithFields(log.Fields{
		"op":   errors.Op(err),
		"code": code,
	}).Errorf("window procedure: %v", err)
}

// LogReporter reports window procedure failures to the logger.
var LogReporter Reporter = logReporter{}

// TextProcedure paints its content through the Painter, posts the quit
// message when the window is destroyed, and leaves any other message to
// the default window procedure.
type TextProcedure struct {
	api      User32
	painter  Painter
	reporter Reporter
}

// NewTextProcedure creates the window procedure. A nil reporter
// falls back to LogReporter.
func NewTextProcedure(api User32, painter Painter, reporter Reporter) *TextProcedure {
	if reporter == nil {
		reporter = LogReporter
	}
	return &TextProcedure{api: api, painter: painter, reporter: reporter}
}

// Handle dispatches the message.
func (p *TextProcedure) Handle(hwnd sys.Hwnd, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case sys.WmPaint:
		return p.paint(hwnd, wParam, lParam)
	case sys.WmDestroy:
		// every destroy posts a quit message, even a repeated one
		p.api.PostQuitMessage(0)
		return 0
	default:
		return p.api.DefWindowProc(hwnd, msg, wParam, lParam)
	}
}

func (p *TextProcedure) paint(hwnd sys.Hwnd, wParam, lParam uintptr) uintptr {
	ctx, err := beginPaint(p.api, hwnd)
	if err != nil {
		p.reporter.Report(err)
		// the default procedure validates the update
		// region so the paint message is not re-sent
		return p.api.DefWindowProc(hwnd, sys.WmPaint, wParam, lParam)
	}
	defer ctx.end()
	if err := p.draw(ctx); err != nil {
		p.reporter.Report(err)
	}
	return 0
}

func (p *TextProcedure) draw(ctx *PaintContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewQueryError("Paint", fmt.Errorf("painter panicked: %v", r))
		}
	}()
	if p.painter == nil {
		return nil
	}
	if err := p.painter.Paint(ctx); err != nil {
		if errors.IsQuery(err) {
			return err
		}
		return errors.NewQueryError("Paint", err)
	}
	return nil
}
