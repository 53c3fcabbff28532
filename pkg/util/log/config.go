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

package log

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	logLevel      = "logging.level"
	logMaxAge     = "logging.max-age"
	logMaxBackups = "logging.max-backups"
	logMaxSize    = "logging.max-size"
	logCompress   = "logging.compress"
	logFormatter  = "logging.formatter"
	logPath       = "logging.path"
	logStdout     = "logging.log-stdout"
)

// Config contains the settings that control the behaviour of the logging system.
type Config struct {
	// Level specifies the minimum allowed log level.
	Level string `json:"logging.level" yaml:"logging.level"`
	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `json:"logging.max-age" yaml:"logging.max-age"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `json:"logging.max-backups" yaml:"logging.max-backups"`
	// MaxSize is the maximum size in megabytes of the log file before it gets rotated.
	MaxSize int `json:"logging.max-size" yaml:"logging.max-size"`
	// Compress indicates whether rotated log files are gzipped.
	Compress bool `json:"logging.compress" yaml:"logging.compress"`
	// Formatter represents the log formatter (json | text).
	Formatter string `json:"logging.formatter" yaml:"logging.formatter"`
	// Path is the directory where log files are stored.
	Path string `json:"logging.path" yaml:"logging.path"`
	// LogStdout indicates whether log lines are also written to standard output.
	LogStdout bool `json:"logging.log-stdout" yaml:"logging.log-stdout"`
}

// InitFromViper initializes logging configuration from Viper.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.Level = v.GetString(logLevel)
	c.MaxAge = v.GetInt(logMaxAge)
	c.MaxBackups = v.GetInt(logMaxBackups)
	c.MaxSize = v.GetInt(logMaxSize)
	c.Compress = v.GetBool(logCompress)
	c.Formatter = v.GetString(logFormatter)
	c.Path = v.GetString(logPath)
	c.LogStdout = v.GetBool(logStdout)
}

// AddFlags registers persistent logging flags.
func (c *Config) AddFlags(flags *pflag.FlagSet) {
	flags.String(logLevel, "info", "Specifies the minimum allowed log level")
	flags.Int(logMaxAge, 0, "Sets the maximum number of days to retain old log files. By default no old log files are removed")
	flags.Int(logMaxBackups, 5, "Specifies the maximum number of old log files to retain")
	flags.Int(logMaxSize, 20, "Specifies the maximum size in megabytes of the log file before it gets rotated")
	flags.Bool(logCompress, false, "Indicates whether rotated log files are compressed")
	flags.String(logFormatter, "text", "Represents the log formatter (json|text)")
	flags.String(logPath, "", "Specifies the directory for storing the logs")
	flags.Bool(logStdout, true, "Indicates whether log lines are written to standard output in addition to writing them to log files")
}
