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
	"bytes"
	"encoding/json"
	"text/template"
)

var schema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"config-file": {"type": "string"},
		"window": {
			"type": "object",
			"properties": {
				"class-name":	{"type": "string", "minLength": 1, "maxLength": {{ .MaxClassName }}},
				"title":		{"type": "string"},
				"text":			{"type": "string"},
				"width":		{"type": "integer", "minimum": 0},
				"height":		{"type": "integer", "minimum": 0},
				"show-command":	{"type": "string", "enum": {{ .ShowCommands }}}
			},
			"additionalProperties": false
		},
		"pipe": {
			"type": "object",
			"properties": {
				"enabled":		{"type": "boolean"},
				"name":			{"type": "string", "minLength": 1},
				"repaint-rate":	{"type": "string", "minLength": 2, "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|ms|s|m|h))+$"},
				"dial-timeout":	{"type": "string", "minLength": 2, "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|ms|s|m|h))+$"}
			},
			"additionalProperties": false
		},
		"logging": {
			"type": "object",
			"properties": {
				"level":		{"type": "string", "enum": ["debug", "info", "warn", "warning", "error", "fatal", "panic", "trace", "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "FATAL", "PANIC", "TRACE"]},
				"max-age":		{"type": "integer", "minimum": 0},
				"max-backups":	{"type": "integer", "minimum": 0},
				"max-size":		{"type": "integer", "minimum": 1},
				"compress":		{"type": "boolean"},
				"formatter":	{"type": "string", "enum": ["json", "text"]},
				"path":			{"type": "string"},
				"log-stdout":	{"type": "boolean"}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}
`

type schemaConfig struct {
	MaxClassName int
	ShowCommands string
}

// maxClassName is the longest class name the system accepts.
const maxClassName = 256

func interpolateSchema() string {
	tmpl := template.Must(template.New("schema").Parse(schema))

	cmds, err := json.Marshal(ShowCommandNames())
	if err != nil {
		return ""
	}
	var b bytes.Buffer
	err = tmpl.Execute(&b, &schemaConfig{
		MaxClassName: maxClassName,
		ShowCommands: string(cmds),
	})
	if err != nil {
		return ""
	}
	return b.String()
}
