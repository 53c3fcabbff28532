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

package app

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thenebulo/winshell/internal/bootstrap"
	"github.com/thenebulo/winshell/pkg/config"
	werrors "github.com/thenebulo/winshell/pkg/errors"
	"github.com/thenebulo/winshell/pkg/shell"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Open the window and pump messages until it is closed",
	Aliases: []string{"start"},
	RunE:    run,
	Example: `
	# Open the default window
	winshell run

	# Render the window text from a template
	winshell run --window.title=Status --window.text="{{ .Title }} on {{ .Hostname | upper }}"
	`,
}

var (
	// the run command config
	cfg = config.NewWithOpts(config.WithRun())
	// exit code returned by the message loop
	exitCode shell.ExitCode
)

func init() {
	cfg.MustViperize(runCmd)
}

// ExitCode returns the exit code of the last message loop.
func ExitCode() int { return int(exitCode) }

func run(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.NewApp(cfg, bootstrap.WithSignals())
	if err != nil {
		return err
	}
	code, err := app.Run()
	if err != nil {
		fields := log.Fields{"op": werrors.Op(err)}
		if c, ok := werrors.Code(err); ok {
			fields["code"] = c
		}
		log.WithFields(fields).Error(err)
		return err
	}
	exitCode = code
	return nil
}
