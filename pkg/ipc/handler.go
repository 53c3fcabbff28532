/*
 * Copyright 2020-2021 by Nedim Sabic Sabic
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

package ipc

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrUnknownMsg is returned when the message type is not recognized.
var ErrUnknownMsg = errors.New("unknown control message")

// Target is the window shell driven by control messages.
type Target interface {
	SetText(text string) error
	Close() error
	PostQuit(code int32) error
}

// Handler applies control messages to the target. Text updates are
// throttled so a chatty client can't flood the window with repaints.
type Handler struct {
	target  Target
	limiter *rate.Limiter
}

// NewHandler creates the handler that allows at most one text
// update per interval. A zero interval disables throttling.
func NewHandler(target Target, interval time.Duration) *Handler {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Handler{target: target, limiter: rate.NewLimiter(limit, 1)}
}

// Handle applies the message to the target. It blocks while
// text updates are throttled or until the context is canceled.
func (h *Handler) Handle(ctx context.Context, m Msg) error {
	log.WithField("type", m.Type).Debug("control message received")
	switch m.Type {
	case Text:
		var data TextData
		if err := m.Decode(&data, "text"); err != nil {
			return fmt.Errorf("invalid text message: %w", err)
		}
		if err := h.limiter.Wait(ctx); err != nil {
			return err
		}
		return h.target.SetText(data.Text)
	case Close:
		return h.target.Close()
	case Quit:
		var data QuitData
		if m.Data != nil {
			if err := m.Decode(&data); err != nil {
				return fmt.Errorf("invalid quit message: %w", err)
			}
		}
		return h.target.PostQuit(data.Code)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMsg, m.Type)
	}
}
