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
	"runtime"

	"github.com/spf13/cobra"
	werrors "github.com/thenebulo/winshell/pkg/errors"
)

// RootCmd is the entrance to the winshell CLI
var RootCmd = &cobra.Command{
	Use:   "winshell",
	Short: "Minimal native window shell",
	Long: `
	winshell registers a window class, opens a top-level window that
	draws a line of text in the center of its client area, and pumps
	window messages until the window is closed. The process exits with
	the code carried by the quit message. While the window is up, the
	text can be replaced, and the window closed, through the control pipe.
	`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd {
		case runCmd, sendCmd:
			if runtime.GOOS != "windows" {
				return werrors.ErrUnsupportedPlatform(runtime.GOOS)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(sendCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)
}
