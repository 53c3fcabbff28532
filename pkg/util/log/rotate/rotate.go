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

package rotate

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the configuration for the rotating file hook.
type Config struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	// Compress determines if rotated files are gzipped.
	Compress bool
	// LocalTime uses the local time for timestamps in backup file names.
	LocalTime bool
	Level     logrus.Level
	Formatter logrus.Formatter
}

// Hook writes log entries to the rotating log file and
// decorates each entry with the source location of the
// logging call.
type Hook struct {
	config Config
	w      io.WriteCloser
	depth  int
	skip   int
	// packages whose frames are skipped when resolving the caller
	skipPrefixes []string
}

// NewHook builds a new rotating file hook.
func NewHook(config Config) (*Hook, error) {
	if config.Filename == "" {
		return nil, fmt.Errorf("rotate: empty log file name")
	}
	if config.Formatter == nil {
		config.Formatter = &logrus.JSONFormatter{}
	}
	return &Hook{
		config:       config,
		depth:        20,
		skip:         5,
		skipPrefixes: []string{"logrus/", "logrus@"},
		w: &lumberjack.Logger{
			Filename:   config.Filename,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
			LocalTime:  config.LocalTime,
		},
	}, nil
}

// Levels returns all levels up to and including the configured one.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels[:h.config.Level+1]
}

// Fire is called by logrus when it is about to write the log entry.
func (h *Hook) Fire(entry *logrus.Entry) error {
	e := entry.WithField("source", h.caller())
	e.Level = entry.Level
	e.Message = entry.Message
	e.Time = entry.Time
	b, err := h.config.Formatter.Format(e)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}

// Close closes the underlying log file.
func (h *Hook) Close() error { return h.w.Close() }

func (h *Hook) caller() string {
	for i := 0; i < h.depth; i++ {
		_, file, line, ok := runtime.Caller(h.skip + i)
		if !ok {
			return ""
		}
		file = trimPath(file)
		if !h.skipFrame(file) {
			return fmt.Sprintf("%s:%d", file, line)
		}
	}
	return ""
}

func (h *Hook) skipFrame(file string) bool {
	for _, prefix := range h.skipPrefixes {
		if strings.HasPrefix(file, prefix) {
			return true
		}
	}
	return false
}

// trimPath keeps the last directory and the file name.
func trimPath(file string) string {
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= 2 {
				return file[i+1:]
			}
		}
	}
	return file
}
