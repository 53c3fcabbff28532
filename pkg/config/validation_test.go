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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	var tests = []struct {
		text  string
		valid bool
		errs  int
	}{
		{text: `window:
                 class-name: MainWin
                 title: Go Window
                 show-command: normal`, valid: true},
		{text: `window:
                 class-name: ""
                 width: 100`, valid: false, errs: 1},
		{text: `window:
                 clas-name: MainWin
                 height: -5`, valid: false, errs: 2},
		{text: `pipe:
                 enabled: true
                 repaint-rate: 1m30s`, valid: true},
		{text: `pipe:
                 enabled: yes please
                 repaint-rate: fast`, valid: false, errs: 2},
		{text: `logging:
                 level: verbose
                 formatter: xml`, valid: false, errs: 2},
		{text: `renderer:
                 font: Arial`, valid: false, errs: 1},
	}

	for i, tt := range tests {
		var m interface{}
		require.NoError(t, yaml.Unmarshal([]byte(tt.text), &m))
		valid, errs := validate(m)
		assert.Equal(t, tt.valid, valid, "%d. errs=%v", i, errs)
		assert.Len(t, errs, tt.errs, "%d. errs=%v", i, errs)
	}
}

func TestStringKeys(t *testing.T) {
	converted, err := stringKeys(map[interface{}]interface{}{
		"window": map[interface{}]interface{}{"title": "Go Window"},
		"list":   []interface{}{map[interface{}]interface{}{"k": 1}},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"window": map[string]interface{}{"title": "Go Window"},
		"list":   []interface{}{map[string]interface{}{"k": 1}},
	}, converted)

	_, err = stringKeys(map[interface{}]interface{}{"window": map[interface{}]interface{}{1: "x"}}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in window")
}
