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
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/thenebulo/winshell/pkg/config"
	"github.com/thenebulo/winshell/pkg/ipc"
	"github.com/thenebulo/winshell/pkg/shell"
	"github.com/thenebulo/winshell/pkg/util/hostname"
	"github.com/thenebulo/winshell/pkg/util/multierror"
	"github.com/thenebulo/winshell/pkg/util/signals"
)

// App wires the configuration, the window shell, the control
// pipe server and the signal handlers.
type App struct {
	config  *config.Config
	shell   *shell.Shell
	server  *ipc.Server
	signals chan struct{}
}

// Option enables changing the behaviour of the bootstrap application.
type Option func(*opts)

type opts struct {
	installSignals bool
	api            shell.User32
	listener       net.Listener
}

// WithSignals installs signal handlers. The first signal closes the window.
func WithSignals() Option {
	return func(o *opts) {
		o.installSignals = true
	}
}

// WithUser32 replaces the native windowing primitives.
func WithUser32(api shell.User32) Option {
	return func(o *opts) {
		o.api = api
	}
}

// WithListener serves the control messages on the given
// listener instead of the configured named pipe.
func WithListener(l net.Listener) Option {
	return func(o *opts) {
		o.listener = l
	}
}

// shellTarget adapts the shell to the control message handler.
type shellTarget struct{ *shell.Shell }

func (t shellTarget) PostQuit(code int32) error { return t.Shell.PostQuit(shell.ExitCode(code)) }

// NewApp constructs a new bootstrap application with the specified configuration
// and a list of options. The configuration is passed from the run command.
func NewApp(cfg *config.Config, options ...Option) (*App, error) {
	if err := InitConfigAndLogger(cfg); err != nil {
		return nil, err
	}
	var opts opts
	for _, opt := range options {
		opt(&opts)
	}

	api := opts.api
	if api == nil {
		var err error
		api, err = newUser32()
		if err != nil {
			return nil, err
		}
	}

	text, err := shell.RenderText(cfg.Window.Text, shell.TextData{
		Title:    cfg.Window.Title,
		Class:    cfg.Window.ClassName,
		Hostname: hostname.Get(),
		Pid:      os.Getpid(),
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		shell:  shell.New(api, cfg.ShellConfig(text)),
	}

	if cfg.Pipe.Enabled || opts.listener != nil {
		l := opts.listener
		if l == nil {
			l, err = ipc.Listen(cfg.Pipe.Name)
			if err != nil {
				return nil, errors.Wrap(err, "unable to start control pipe")
			}
		}
		app.server = ipc.NewServer(l, ipc.NewHandler(shellTarget{app.shell}, cfg.Pipe.RepaintRate))
	}
	if opts.installSignals {
		app.signals = signals.Install()
	}

	return app, nil
}

// Shell returns the window shell driven by the app.
func (a *App) Shell() *shell.Shell { return a.shell }

// Run starts the control pipe server and runs the window shell on
// the calling goroutine until the message loop stops. The exit code
// of the quit message is returned.
func (a *App) Run() (shell.ExitCode, error) {
	if a.server != nil {
		go func() {
			if err := a.server.Serve(); err != nil {
				log.Warnf("control pipe stopped: %v", err)
			}
		}()
		log.Infof("listening for control messages on %s", a.server.Addr())
	}
	if a.signals != nil {
		go func() {
			<-a.signals
			if err := a.shell.Close(); err != nil {
				log.Warnf("unable to close the window: %v", err)
			}
		}()
	}

	code, err := a.shell.Run()
	if err != nil {
		return code, multierror.Wrap(err, a.Shutdown())
	}
	log.WithField("code", code).Infof("message loop stopped after dispatching %s messages",
		humanize.Comma(int64(a.shell.Loop().Dispatched())))

	return code, a.Shutdown()
}

// Shutdown stops the control pipe server.
func (a *App) Shutdown() error {
	if a.server == nil {
		return nil
	}
	return a.server.Close()
}
