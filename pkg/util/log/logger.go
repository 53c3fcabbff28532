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

package log

import (
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/thenebulo/winshell/pkg/util/log/rotate"
)

// loggerErrors counts logger setup errors
var loggerErrors = expvar.NewMap("logger.errors")

// DefaultPath returns the default logs directory. It sits
// under the user cache directory, or next to the executable
// when the cache directory can't be resolved.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err == nil {
		return filepath.Join(dir, "winshell", "logs")
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "logs")
}

// InitFromConfig initializes the standard logrus logger from config
// options. Log entries are written to the filename under the logs path.
func InitFromConfig(c Config, filename string) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}

	path := c.Path
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return errors.New("got an empty logs directory path")
	}
	if _, err := os.Stat(path); err != nil {
		if err := os.MkdirAll(path, os.ModePerm); err != nil {
			return fmt.Errorf("unable to create the %s logs directory: %v", path, err)
		}
	}

	file := filepath.Join(path, filename)

	var formatter logrus.Formatter
	switch c.Formatter {
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	logrus.SetFormatter(formatter)
	logrus.SetLevel(level)

	if c.LogStdout {
		logrus.SetOutput(os.Stdout)
	} else {
		logrus.SetOutput(io.Discard)
	}

	hook, err := rotate.NewHook(rotate.Config{
		Filename:   file,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		MaxSize:    c.MaxSize,
		Compress:   c.Compress,
		Level:      level,
		Formatter:  formatter,
	})
	if err != nil {
		loggerErrors.Add(err.Error(), 1)
		// fall back to the plain file hook
		pathMap := make(lfshook.PathMap)
		for _, lvl := range logrus.AllLevels {
			pathMap[lvl] = file
		}
		logrus.AddHook(lfshook.NewHook(pathMap, formatter))
		logrus.Warnf("unable to initialize rotate file hook: %v", err)
		return nil
	}
	logrus.AddHook(hook)

	return nil
}
