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
	"bytes"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

// TextData is the data the window text template is evaluated against.
type TextData struct {
	Title    string
	Class    string
	Hostname string
	Pid      int
}

// RenderText evaluates the window text as a template. The template
// has access to the sprig function set. Text without template actions
// is returned verbatim.
func RenderText(text string, data TextData) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	if data.Hostname == "" {
		data.Hostname, _ = os.Hostname()
	}
	if data.Pid == 0 {
		data.Pid = os.Getpid()
	}
	tmpl, err := template.New("text").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", errors.Wrap(err, "invalid window text template")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "unable to render window text")
	}
	return buf.String(), nil
}
