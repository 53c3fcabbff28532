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

package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Show starts the spinner on standard error with the given
// message. Standard output is kept free for command results.
func Show(msg string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 80*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.HideCursor = true
	s.Start()
	return s
}
