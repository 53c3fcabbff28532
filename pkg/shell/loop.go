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
	"context"

	fsm "github.com/qmuntal/stateless"
	log "github.com/sirupsen/logrus"
	"github.com/thenebulo/winshell/pkg/errors"
	"github.com/thenebulo/winshell/pkg/sys"
)

// ExitCode is the process exit code carried by the quit message.
type ExitCode int32

var (
	// StateRunning is the state of the loop while it retrieves and dispatches messages.
	StateRunning = fsm.State("running")
	// StateStopped is the terminal state reached after the quit message or a retrieval failure.
	StateStopped = fsm.State("stopped")

	quitTrigger = fsm.Trigger("quit")
	failTrigger = fsm.Trigger("fail")
)

// Loop is the blocking message loop. It retrieves messages from the
// calling thread's queue, translates and dispatches them to the window
// procedure until the quit message arrives. The loop is single-threaded:
// it must run on the thread that created the window, and the window
// procedure runs to completion before the next message is retrieved.
// The only way to stop the loop is posting the quit message.
type Loop struct {
	api        User32
	fsm        *fsm.StateMachine
	dispatched uint64
}

// NewLoop creates a new message loop in the running state.
func NewLoop(api User32) *Loop {
	l := &Loop{api: api, fsm: fsm.NewStateMachine(StateRunning)}
	l.fsm.Configure(StateRunning).
		Permit(quitTrigger, StateStopped).
		Permit(failTrigger, StateStopped)
	l.fsm.OnTransitioned(func(ctx context.Context, transition fsm.Transition) {
		log.Debugf("message loop transitioned from %v to %v on %v", transition.Source, transition.Destination, transition.Trigger)
	})
	return l
}

// Run pumps messages until the quit message is retrieved and returns the
// exit code stored in it. A failing retrieval stops the loop with
// *errors.DispatchError.
func (l *Loop) Run() (ExitCode, error) {
	if l.Stopped() {
		return 0, errors.ErrLoopStopped
	}
	var msg sys.Msg
	for {
		// GetMessage returns zero for the quit message and
		// -1 on failure, so the minus-one convention applies
		ret, lastErr := l.api.GetMessage(&msg, 0, 0, 0)
		r, err := sys.Check("GetMessage", sys.MinusOneFailure, ret, lastErr)
		if err != nil {
			if ferr := l.fsm.Fire(failTrigger); ferr != nil {
				log.Warnf("message loop: %v", ferr)
			}
			return 0, errors.NewDispatchError("GetMessage", err)
		}
		if r == 0 {
			if ferr := l.fsm.Fire(quitTrigger); ferr != nil {
				log.Warnf("message loop: %v", ferr)
			}
			code := ExitCode(int32(msg.WParam))
			log.Infof("message loop stopped after %d dispatched messages. Exit code: %d", l.dispatched, code)
			return code, nil
		}
		l.api.TranslateMessage(&msg)
		l.api.DispatchMessage(&msg)
		l.dispatched++
	}
}

// State returns the current loop state.
func (l *Loop) State() fsm.State { return l.fsm.MustState() }

// Stopped determines if the loop reached the terminal state.
func (l *Loop) Stopped() bool { return l.State() == StateStopped }

// Dispatched returns the number of messages dispatched so far.
func (l *Loop) Dispatched() uint64 { return l.dispatched }
