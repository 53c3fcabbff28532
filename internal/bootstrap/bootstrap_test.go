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

package bootstrap

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenebulo/winshell/pkg/config"
	"github.com/thenebulo/winshell/pkg/ipc"
	"github.com/thenebulo/winshell/pkg/shell"
	"github.com/thenebulo/winshell/pkg/sys"
)

// queueUser32 serves window messages from a channel so the
// control pipe can feed the loop from other goroutines.
type queueUser32 struct {
	queue chan sys.Msg
	proc  sys.WndProcFunc

	mu    sync.Mutex
	drawn []string
}

func newQueueUser32() *queueUser32 { return &queueUser32{queue: make(chan sys.Msg, 16)} }

func (q *queueUser32) ModuleHandle() (uintptr, error)                     { return 0x400000, nil }
func (q *queueUser32) LoadIcon(sys.Hinstance, uintptr) (uintptr, error)   { return 1, nil }
func (q *queueUser32) LoadCursor(sys.Hinstance, uintptr) (uintptr, error) { return 1, nil }
func (q *queueUser32) StockObject(int32) (uintptr, error)                 { return 1, nil }
func (q *queueUser32) NewCallback(fn sys.WndProcFunc) uintptr {
	q.proc = fn
	return 0xcafe
}
func (q *queueUser32) RegisterClass(*sys.WndClass) (uintptr, error) { return 0xc001, nil }
func (q *queueUser32) CreateWindowEx(uint32, string, string, uint32, int32, int32, int32, int32, sys.Hwnd, sys.Hmenu, sys.Hinstance, uintptr) (uintptr, error) {
	return 0x1000, nil
}
func (q *queueUser32) ShowWindow(sys.Hwnd, int32) uintptr { return 0 }
func (q *queueUser32) UpdateWindow(hwnd sys.Hwnd) (uintptr, error) {
	q.proc(hwnd, sys.WmPaint, 0, 0)
	return 1, nil
}
func (q *queueUser32) InvalidateRect(hwnd sys.Hwnd, _ *sys.Rect, _ bool) (uintptr, error) {
	q.queue <- sys.Msg{Hwnd: hwnd, Message: sys.WmPaint}
	return 1, nil
}
func (q *queueUser32) GetMessage(msg *sys.Msg, _ sys.Hwnd, _, _ uint32) (uintptr, error) {
	*msg = <-q.queue
	if msg.Message == sys.WmQuit {
		return 0, nil
	}
	return 1, nil
}
func (q *queueUser32) TranslateMessage(*sys.Msg) uintptr { return 0 }
func (q *queueUser32) DispatchMessage(msg *sys.Msg) uintptr {
	return q.proc(msg.Hwnd, msg.Message, msg.WParam, msg.LParam)
}
func (q *queueUser32) PostMessage(hwnd sys.Hwnd, msg uint32, wparam, lparam uintptr) (uintptr, error) {
	q.queue <- sys.Msg{Hwnd: hwnd, Message: msg, WParam: wparam, LParam: lparam}
	return 1, nil
}
func (q *queueUser32) PostQuitMessage(code int32) {
	q.queue <- sys.Msg{Message: sys.WmQuit, WParam: uintptr(code)}
}
func (q *queueUser32) DefWindowProc(hwnd sys.Hwnd, msg uint32, _, _ uintptr) uintptr {
	if msg == sys.WmClose {
		q.proc(hwnd, sys.WmDestroy, 0, 0)
	}
	return 0
}
func (q *queueUser32) BeginPaint(_ sys.Hwnd, ps *sys.PaintStruct) (uintptr, error) {
	ps.Hdc = 0x2000
	return 0x2000, nil
}
func (q *queueUser32) EndPaint(sys.Hwnd, *sys.PaintStruct) uintptr { return 1 }
func (q *queueUser32) GetClientRect(_ sys.Hwnd, rect *sys.Rect) (uintptr, error) {
	*rect = sys.Rect{Right: 640, Bottom: 480}
	return 1, nil
}
func (q *queueUser32) DrawText(_ sys.Hdc, text string, _ *sys.Rect, _ uint32) (uintptr, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.drawn = append(q.drawn, text)
	return 16, nil
}

func (q *queueUser32) texts() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.drawn...)
}

func newConfig(t *testing.T, args ...string) *config.Config {
	cfg := config.NewWithOpts(config.WithRun())
	cmd := &cobra.Command{}
	cfg.MustViperize(cmd)
	args = append([]string{
		"--config-file=_fixtures/missing.yml",
		"--logging.path=_fixtures",
		"--logging.log-stdout=false",
		"--pipe.repaint-rate=0s",
	}, args...)
	require.NoError(t, cmd.PersistentFlags().Parse(args))
	return cfg
}

func TestAppControlledOverPipe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	api := newQueueUser32()
	app, err := NewApp(newConfig(t, "--window.text={{ .Class | lower }}"), WithUser32(api), WithListener(l))
	require.NoError(t, err)

	type result struct {
		code shell.ExitCode
		err  error
	}
	done := make(chan result, 1)
	go func() {
		code, err := app.Run()
		done <- result{code, err}
	}()

	require.Eventually(t, func() bool { return app.Shell().Hwnd().IsValid() }, time.Second*5, time.Millisecond*10)

	conn, err := net.Dial("tcp", l.Addr().String())
	require.NoError(t, err)
	c := ipc.NewClient(conn)
	defer c.Close()

	require.NoError(t, c.Send(ipc.NewTextMsg("updated")))
	require.NoError(t, c.Send(ipc.NewQuitMsg(4)))

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, shell.ExitCode(4), r.code)
	case <-time.After(time.Second * 5):
		t.Fatal("message loop didn't stop")
	}

	assert.Equal(t, []string{"mainwin", "updated"}, api.texts())
}

func TestAppPipeDisabled(t *testing.T) {
	api := newQueueUser32()
	app, err := NewApp(newConfig(t, "--pipe.enabled=false"), WithUser32(api))
	require.NoError(t, err)
	assert.Nil(t, app.server)
	assert.NoError(t, app.Shutdown())

	api.queue <- sys.Msg{Hwnd: 0x1000, Message: sys.WmClose}
	code, err := app.Run()
	require.NoError(t, err)
	assert.Equal(t, shell.ExitCode(0), code)
	assert.Equal(t, []string{"Go Window"}, api.texts())
}

func TestAppInvalidTemplate(t *testing.T) {
	_, err := NewApp(newConfig(t, "--pipe.enabled=false", "--window.text={{ .Nope"), WithUser32(newQueueUser32()))
	require.Error(t, err)
}
