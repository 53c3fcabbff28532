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
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thenebulo/winshell/pkg/config"
	"github.com/thenebulo/winshell/pkg/ipc"
	"github.com/thenebulo/winshell/pkg/util/spinner"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a control message to the running window",
	RunE:  send,
	Example: `
	# Replace the window text
	winshell send --text "Build succeeded"

	# Close the window. The shell exits with the zero code
	winshell send --close

	# Stop the message loop with the exit code 3
	winshell send --quit-code 3
	`,
}

var (
	sendConfig = config.NewWithOpts(config.WithSend())

	sendText     string
	sendClose    bool
	sendQuitCode int32
)

func init() {
	sendConfig.MustViperize(sendCmd)
	sendCmd.Flags().StringVar(&sendText, "text", "", "Replaces the window text")
	sendCmd.Flags().BoolVar(&sendClose, "close", false, "Closes the window")
	sendCmd.Flags().Int32Var(&sendQuitCode, "quit-code", 0, "Stops the message loop with the given exit code")
}

// message builds the control message from the send flags. Exactly one
// of the message flags must be given.
func message(cmd *cobra.Command) (ipc.Msg, error) {
	var msgs []ipc.Msg
	if cmd.Flags().Changed("text") {
		msgs = append(msgs, ipc.NewTextMsg(sendText))
	}
	if sendClose {
		msgs = append(msgs, ipc.NewCloseMsg())
	}
	if cmd.Flags().Changed("quit-code") {
		msgs = append(msgs, ipc.NewQuitMsg(sendQuitCode))
	}
	if len(msgs) != 1 {
		return ipc.Msg{}, errors.New("exactly one of --text, --close or --quit-code is required")
	}
	return msgs[0], nil
}

// loadSendConfig resolves the pipe settings. The config file is
// optional, but when it loads it must be valid.
func loadSendConfig(cfg *config.Config) error {
	isLoaded := cfg.TryLoadFile(cfg.File()) == nil
	if err := cfg.Init(); err != nil {
		return err
	}
	if !isLoaded {
		log.Debugf("unable to load configuration from %s file. "+
			"Using the default pipe settings", cfg.File())
		return nil
	}
	return cfg.Validate()
}

func send(cmd *cobra.Command, args []string) error {
	m, err := message(cmd)
	if err != nil {
		return err
	}
	if err := loadSendConfig(sendConfig); err != nil {
		return err
	}
	spin := spinner.Show("Connecting to " + ipc.PipePath(sendConfig.Pipe.Name))
	c, err := ipc.Dial(context.Background(), sendConfig.Pipe.Name, sendConfig.Pipe.DialTimeout)
	spin.Stop()
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Send(m)
}
