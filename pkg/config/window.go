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

package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/thenebulo/winshell/pkg/ipc"
	"github.com/thenebulo/winshell/pkg/sys"
)

const (
	className   = "window.class-name"
	title       = "window.title"
	text        = "window.text"
	width       = "window.width"
	height      = "window.height"
	showCommand = "window.show-command"

	pipeEnabled     = "pipe.enabled"
	pipeName        = "pipe.name"
	pipeRepaintRate = "pipe.repaint-rate"
	pipeDialTimeout = "pipe.dial-timeout"
)

// showCommands maps the show command names to ShowWindow commands.
// Hiding the window is not offered since nothing could close it.
var showCommands = map[string]int32{
	"normal":     sys.ShowNormal,
	"minimized":  sys.ShowMinimized,
	"maximized":  sys.ShowMaximized,
	"noactivate": sys.ShowNoActivate,
	"show":       sys.ShowShow,
	"default":    sys.ShowDefault,
}

// ShowCommandNames returns the sorted list of show command names.
func ShowCommandNames() []string {
	names := make([]string, 0, len(showCommands))
	for name := range showCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseShowCommand resolves the show command name.
func ParseShowCommand(name string) (int32, error) {
	cmd, ok := showCommands[name]
	if !ok {
		return 0, fmt.Errorf("unknown show command %q. Valid values are %v", name, ShowCommandNames())
	}
	return cmd, nil
}

// WindowConfig stores the window class and window creation settings.
type WindowConfig struct {
	// ClassName is the name of the registered window class.
	ClassName string `json:"class-name" yaml:"class-name"`
	// Title is the window caption.
	Title string `json:"title" yaml:"title"`
	// Text is drawn in the center of the client area. It may be a template.
	Text string `json:"text" yaml:"text"`
	// Width is the initial window width. Zero picks the system default.
	Width int32 `json:"width" yaml:"width"`
	// Height is the initial window height. Zero picks the system default.
	Height int32 `json:"height" yaml:"height"`
	// ShowCommand controls how the window is shown.
	ShowCommand string `json:"show-command" yaml:"show-command"`
}

func (c *WindowConfig) initFromViper(v *viper.Viper) {
	c.ClassName = v.GetString(className)
	c.Title = v.GetString(title)
	c.Text = v.GetString(text)
	c.Width = v.GetInt32(width)
	c.Height = v.GetInt32(height)
	c.ShowCommand = v.GetString(showCommand)
}

func (c *WindowConfig) addFlags(flags *pflag.FlagSet) {
	flags.String(className, "MainWin", "Specifies the name of the registered window class")
	flags.String(title, "Go Window", "Specifies the window title")
	flags.String(text, "Go Window", "Specifies the text drawn in the center of the window. Accepts template expressions")
	flags.Int32(width, 0, "Specifies the initial window width. The system picks the width if zero")
	flags.Int32(height, 0, "Specifies the initial window height. The system picks the height if zero")
	flags.String(showCommand, "normal", fmt.Sprintf("Determines how the window is shown (%v)", ShowCommandNames()))
}

// PipeConfig stores the control pipe settings.
type PipeConfig struct {
	// Enabled indicates whether the control pipe server is started.
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Name is the pipe name.
	Name string `json:"name" yaml:"name"`
	// RepaintRate is the minimum interval between text updates.
	RepaintRate time.Duration `json:"repaint-rate" yaml:"repaint-rate"`
	// DialTimeout bounds the time the client waits for the pipe to appear.
	DialTimeout time.Duration `json:"dial-timeout" yaml:"dial-timeout"`
}

func (c *PipeConfig) initFromViper(v *viper.Viper) {
	c.Enabled = v.GetBool(pipeEnabled)
	c.Name = v.GetString(pipeName)
	c.RepaintRate = v.GetDuration(pipeRepaintRate)
	c.DialTimeout = v.GetDuration(pipeDialTimeout)
}

func (c *PipeConfig) addFlags(flags *pflag.FlagSet) {
	flags.Bool(pipeEnabled, true, "Indicates if the control pipe is enabled")
	flags.String(pipeName, ipc.DefaultPipe, "Specifies the name of the control pipe")
	flags.Duration(pipeRepaintRate, time.Millisecond*50, "Specifies the minimum interval between text updates received on the control pipe")
	flags.Duration(pipeDialTimeout, time.Second*5, "Specifies how long the client waits for the control pipe to appear")
}
