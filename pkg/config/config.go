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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/thenebulo/winshell/pkg/shell"
	"github.com/thenebulo/winshell/pkg/util/log"
	"github.com/thenebulo/winshell/pkg/util/multierror"
	"gopkg.in/yaml.v3"
)

const configFile = "config-file"

// Config stores the configuration of the window shell and the ambient
// settings. Values are resolved from flags, environment variables and
// the config file, in that order of precedence.
type Config struct {
	// Window contains the window class and window creation settings.
	Window WindowConfig `json:"window" yaml:"window"`
	// Pipe contains the control pipe settings.
	Pipe PipeConfig `json:"pipe" yaml:"pipe"`
	// Log contains log-specific configuration options.
	Log log.Config `json:"logging" yaml:"logging"`

	flags *pflag.FlagSet
	viper *viper.Viper
	opts  *Options
}

// Options determines which config flags are toggled depending on the command type.
type Options struct {
	run  bool
	send bool
}

// Option is the type alias for the config option.
type Option func(*Options)

// WithRun determines the run command is executed.
func WithRun() Option {
	return func(o *Options) {
		o.run = true
	}
}

// WithSend determines the send command is executed.
func WithSend() Option {
	return func(o *Options) {
		o.send = true
	}
}

// NewWithOpts builds the config and registers the flags
// required by the command the options describe.
func NewWithOpts(options ...Option) *Config {
	opts := &Options{}
	for _, opt := range options {
		opt(opts)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	c := &Config{
		viper: v,
		flags: new(pflag.FlagSet),
		opts:  opts,
	}
	c.addFlags()
	return c
}

// MustViperize adds the flag set to the Cobra command and binds them within the Viper flags.
func (c *Config) MustViperize(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(c.flags)
	if err := c.viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// Viper returns the underlying Viper instance.
func (c *Config) Viper() *viper.Viper { return c.viper }

// File returns the path of the configuration file.
func (c *Config) File() string { return c.viper.GetString(configFile) }

// TryLoadFile attempts to load the configuration file from specified path on the file system.
func (c *Config) TryLoadFile(file string) error {
	c.viper.SetConfigFile(file)
	return c.viper.ReadInConfig()
}

// Init populates the config sections from the resolved settings.
func (c *Config) Init() error {
	c.Window.initFromViper(c.viper)
	c.Pipe.initFromViper(c.viper)
	c.Log.InitFromViper(c.viper)
	if c.opts.run {
		if _, err := ParseShowCommand(c.Window.ShowCommand); err != nil {
			return err
		}
	}
	return nil
}

// Validate ensures that the config file and the effective settings have the
// expected structure and values. It returns the list of validation errors
// prefixed with the offending configuration property.
func (c *Config) Validate() error {
	file := c.File()
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var out interface{}
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &out)
	case ".json":
		err = json.Unmarshal(b, &out)
	default:
		return errors.Errorf("%s is not a supported config file extension", filepath.Ext(file))
	}
	if err != nil {
		return errors.Wrap(err, "couldn't read the config file")
	}
	if valid, errs := validate(out); !valid || len(errs) > 0 {
		return fmt.Errorf("invalid config: %v", multierror.Wrap(errs...))
	}
	if valid, errs := validate(c.viper.AllSettings()); !valid || len(errs) > 0 {
		return fmt.Errorf("invalid config: %v", multierror.Wrap(errs...))
	}
	return nil
}

// ShellConfig returns the window shell configuration. The window
// text must already be rendered by the caller.
func (c *Config) ShellConfig(text string) shell.Config {
	// unknown names fall back to the normal show command
	cmd, _ := ParseShowCommand(c.Window.ShowCommand)
	return shell.Config{
		ClassName:   c.Window.ClassName,
		Title:       c.Window.Title,
		Text:        text,
		Width:       c.Window.Width,
		Height:      c.Window.Height,
		ShowCommand: cmd,
	}
}

func (c *Config) addFlags() {
	c.flags.String(configFile, defaultConfigFile(), "Indicates the location of the configuration file")
	if c.opts.run {
		c.Window.addFlags(c.flags)
	}
	if c.opts.run || c.opts.send {
		c.Pipe.addFlags(c.flags)
	}
	c.Log.AddFlags(c.flags)
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "winshell.yml"
	}
	return filepath.Join(dir, "winshell", "winshell.yml")
}
