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
	"net"
	"os/user"
	"time"

	"github.com/Microsoft/go-winio"
	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// Listen creates the control pipe listener. Only the current user
// is granted access to the pipe.
func Listen(name string) (net.Listener, error) {
	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve the current user: %v", err)
	}
	// generic read/write access for the current user SID
	descriptor := "D:P(A;;GA;;;" + usr.Uid + ")"
	path := PipePath(name)
	l, err := winio.ListenPipe(path, &winio.PipeConfig{SecurityDescriptor: descriptor})
	if err != nil {
		return nil, fmt.Errorf("fail to listen on the %q pipe: %v", path, err)
	}
	return l, nil
}

// Dial connects to the control pipe. It keeps retrying with the
// exponential backoff until the pipe appears or the timeout elapses.
func Dial(ctx context.Context, name string, timeout time.Duration) (*Client, error) {
	path := PipePath(name)
	b := &backoff.ExponentialBackOff{
		InitialInterval:     time.Millisecond * 100,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         time.Second * 2,
		MaxElapsedTime:      timeout,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()

	var conn net.Conn
	op := func() error {
		var err error
		conn, err = winio.DialPipeContext(ctx, path)
		return err
	}
	notify := func(err error, d time.Duration) {
		log.Debugf("%s pipe not ready (%v). Trying to dial in %v...", path, err, d)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("unable to dial %s pipe: %v", path, err)
	}
	return NewClient(conn), nil
}

func listenerClosed(err error) bool {
	return errors.Is(err, winio.ErrPipeListenerClosed) || errors.Is(err, net.ErrClosed)
}
