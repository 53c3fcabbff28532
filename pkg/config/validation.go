/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
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

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// validate checks the settings tree against the config schema. The
// returned errors name the offending property.
func validate(m interface{}) (bool, []error) {
	converted, err := stringKeys(m, "")
	if err != nil {
		return false, []error{errors.Wrap(err, "fail to convert keys to string")}
	}
	r, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(interpolateSchema()),
		gojsonschema.NewGoLoader(converted),
	)
	if err != nil {
		return false, []error{errors.Wrap(err, "fail to validate config through schema")}
	}
	errs := make([]error, 0, len(r.Errors()))
	for _, e := range r.Errors() {
		errs = append(errs, errors.New(e.String()))
	}
	return r.Valid(), errs
}

// stringKeys converts the keys of YAML decoded maps to strings
// recursively. gojsonschema only understands string keys.
func stringKeys(value interface{}, path string) (interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		dict := make(map[string]interface{}, len(v))
		for key, entry := range v {
			converted, err := stringKeys(entry, join(path, key))
			if err != nil {
				return nil, err
			}
			dict[key] = converted
		}
		return dict, nil
	case map[interface{}]interface{}:
		dict := make(map[string]interface{}, len(v))
		for k, entry := range v {
			key, ok := k.(string)
			if !ok {
				return nil, invalidKeyError(path, k)
			}
			converted, err := stringKeys(entry, join(path, key))
			if err != nil {
				return nil, err
			}
			dict[key] = converted
		}
		return dict, nil
	case []interface{}:
		list := make([]interface{}, 0, len(v))
		for i, entry := range v {
			converted, err := stringKeys(entry, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			list = append(list, converted)
		}
		return list, nil
	default:
		return value, nil
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func invalidKeyError(path string, key interface{}) error {
	location := "at top level"
	if path != "" {
		location = "in " + path
	}
	return errors.Errorf("non-string key %s: %#v", location, key)
}
