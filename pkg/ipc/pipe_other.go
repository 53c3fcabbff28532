//go:build !windows
// +build !windows

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
	"net"
	"runtime"
	"time"

	werrors "github.com/thenebulo/winshell/pkg/errors"
)

// Listen is only supported on Windows.
func Listen(name string) (net.Listener, error) {
	return nil, werrors.ErrUnsupportedPlatform(runtime.GOOS)
}

// Dial is only supported on Windows.
func Dial(ctx context.Context, name string, timeout time.Duration) (*Client, error) {
	return nil, werrors.ErrUnsupportedPlatform(runtime.GOOS)
}

func listenerClosed(err error) bool { return errors.Is(err, net.ErrClosed) }
