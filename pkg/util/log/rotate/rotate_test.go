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
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHook(t *testing.T) {
	_, err := NewHook(Config{})
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "winshell.log")
	hook, err := NewHook(Config{Filename: file, MaxSize: 1, Level: logrus.InfoLevel})
	require.NoError(t, err)
	defer hook.Close()

	assert.Len(t, hook.Levels(), int(logrus.InfoLevel)+1)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.AddHook(hook)
	log.WithField("class", "MainWin").Info("window class registered")

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "window class registered")
	assert.Contains(t, string(b), "rotate/rotate_test.go")
}

func TestTrimPath(t *testing.T) {
	assert.Equal(t, "shell/loop.go", trimPath("/src/winshell/pkg/shell/loop.go"))
	assert.Equal(t, "loop.go", trimPath("loop.go"))
}
