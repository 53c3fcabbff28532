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

// Package ipc implements the control channel of the shell. Local
// clients connect to the named pipe and send JSON encoded messages
// that replace the window text, close the window or stop the message
// loop with an exit code.
package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DefaultPipe is the default name of the control pipe.
const DefaultPipe = `\\.\pipe\winshell`

// ErrMalformedMsg is returned when the message payload is missing
// or doesn't have the shape required by the message type.
var ErrMalformedMsg = errors.New("malformed control message")

// MsgType determines the type of the message sent to the control pipe.
type MsgType uint8

const (
	// Text replaces the window text and repaints the client area.
	Text MsgType = iota
	// Close asks the window to close. The loop stops with the zero exit code.
	Close
	// Quit posts the quit message with the requested exit code.
	Quit
)

// String returns the message type name.
func (t MsgType) String() string {
	switch t {
	case Text:
		return "text"
	case Close:
		return "close"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Msg represents the data exchanged between the control client and server.
type Msg struct {
	Type MsgType `json:"type"`
	Data any     `json:"data,omitempty"`
}

// TextData is the payload of the Text message.
type TextData struct {
	Text string `mapstructure:"text" json:"text"`
}

// QuitData is the payload of the Quit message.
type QuitData struct {
	Code int32 `mapstructure:"code" json:"code"`
}

// NewTextMsg creates the message that replaces the window text.
func NewTextMsg(text string) Msg { return Msg{Type: Text, Data: TextData{Text: text}} }

// NewCloseMsg creates the message that closes the window.
func NewCloseMsg() Msg { return Msg{Type: Close} }

// NewQuitMsg creates the message that stops the loop with the exit code.
func NewQuitMsg(code int32) Msg { return Msg{Type: Quit, Data: QuitData{Code: code}} }

// Encode serializes the message to JSON.
func (m Msg) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode decodes the generic message payload into the output structure.
// Unknown keys are rejected. Payloads that arrive as generic maps must
// also carry each of the required keys.
func (m Msg) Decode(output any, required ...string) error {
	if m.Data == nil {
		return fmt.Errorf("%w: %s message has no data", ErrMalformedMsg, m.Type)
	}
	var md mapstructure.Metadata
	var decoderConfig = &mapstructure.DecoderConfig{
		Result:           output,
		Metadata:         &md,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	if err := decoder.Decode(m.Data); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMsg, err)
	}
	if _, ok := m.Data.(map[string]any); !ok {
		return nil
	}
	for _, key := range required {
		if !contains(md.Keys, key) {
			return fmt.Errorf("%w: %s message requires the %q key", ErrMalformedMsg, m.Type, key)
		}
	}
	return nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// PipePath takes the pipe name defined as a URI like `npipe:///winshell`
// or as a bare name and transforms it into `\\.\pipe\winshell`.
func PipePath(name string) string {
	switch {
	case name == "":
		return DefaultPipe
	case strings.HasPrefix(name, `\\.\pipe\`):
		return name
	case strings.HasPrefix(name, "npipe:///"):
		return `\\.\pipe\` + strings.TrimPrefix(name, "npipe:///")
	default:
		return `\\.\pipe\` + name
	}
}
