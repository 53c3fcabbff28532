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
	"github.com/thenebulo/winshell/pkg/errors"
	"github.com/thenebulo/winshell/pkg/sys"
)

// PaintContext is the device context acquired for painting the window's
// client area. It is valid only inside the Painter invocation. Every
// method fails with errors.ErrPaintContextReleased once painting ended.
type PaintContext struct {
	api      User32
	hwnd     sys.Hwnd
	ps       sys.PaintStruct
	released bool
}

func beginPaint(api User32, hwnd sys.Hwnd) (*PaintContext, error) {
	ctx := &PaintContext{api: api, hwnd: hwnd}
	ret, lastErr := api.BeginPaint(hwnd, &ctx.ps)
	if _, err := sys.Check("BeginPaint", sys.NullFailure, ret, lastErr); err != nil {
		return nil, errors.NewQueryError("BeginPaint", err)
	}
	return ctx, nil
}

// end releases the device context. Calling it more than once has no effect.
func (p *PaintContext) end() {
	if p.released {
		return
	}
	p.released = true
	p.api.EndPaint(p.hwnd, &p.ps)
}

// Hwnd returns the window being painted.
func (p *PaintContext) Hwnd() sys.Hwnd { return p.hwnd }

// Hdc returns the device context handle.
func (p *PaintContext) Hdc() sys.Hdc { return p.ps.Hdc }

// Erase indicates whether the background must be erased.
func (p *PaintContext) Erase() bool { return p.ps.Erase != 0 }

// PaintRect returns the rectangle in which the painting is requested.
func (p *PaintContext) PaintRect() sys.Rect { return p.ps.RcPaint }

// ClientRect queries the coordinates of the window's client area.
func (p *PaintContext) ClientRect() (sys.Rect, error) {
	var rect sys.Rect
	if p.released {
		return rect, errors.NewQueryError("GetClientRect", errors.ErrPaintContextReleased)
	}
	ret, lastErr := p.api.GetClientRect(p.hwnd, &rect)
	if _, err := sys.Check("GetClientRect", sys.NullFailure, ret, lastErr); err != nil {
		return rect, errors.NewQueryError("GetClientRect", err)
	}
	return rect, nil
}

// DrawText draws the text into the rectangle with the given format flags.
func (p *PaintContext) DrawText(text string, rect *sys.Rect, format uint32) error {
	if p.released {
		return errors.NewQueryError("DrawText", errors.ErrPaintContextReleased)
	}
	ret, lastErr := p.api.DrawText(p.ps.Hdc, text, rect, format)
	if _, err := sys.Check("DrawText", sys.NullFailure, ret, lastErr); err != nil {
		return errors.NewQueryError("DrawText", err)
	}
	return nil
}

// Painter renders the window content inside the scoped paint context.
type Painter interface {
	Paint(ctx *PaintContext) error
}

// PainterFunc adapts the function to the Painter interface.
type PainterFunc func(ctx *PaintContext) error

// Paint calls f(ctx).
func (f PainterFunc) Paint(ctx *PaintContext) error { return f(ctx) }

// TextPainter draws a single line of text centered both
// horizontally and vertically in the client area.
type TextPainter struct {
	text func() string
}

// NewTextPainter creates a painter that draws the text returned by the
// function. The function is evaluated on every paint.
func NewTextPainter(text func() string) *TextPainter {
	return &TextPainter{text: text}
}

// Paint draws the centered text.
func (t *TextPainter) Paint(ctx *PaintContext) error {
	rect, err := ctx.ClientRect()
	if err != nil {
		return err
	}
	return ctx.DrawText(t.text(), &rect, sys.DrawTextSingleLine|sys.DrawTextCenter|sys.DrawTextVCenter)
}
