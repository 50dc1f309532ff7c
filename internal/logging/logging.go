// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package logging provides the solver's process-wide structured logger.
//
// Components that want to log should call [HCLogger] and derive a named
// sub-logger from it with Named, rather than constructing their own
// hclog.Logger, so that all solver log lines share one level and output
// configuration.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLog is the environment variable that controls the log level of
	// the base logger returned by HCLogger. An unset or unrecognized
	// value disables logging entirely, matching hclog's "off" behavior.
	EnvLog = "IFDS_LOG"

	// EnvLogPath, when set, redirects log output to the named file
	// instead of stderr.
	EnvLogPath = "IFDS_LOG_PATH"
)

var (
	baseLogger     hclog.Logger
	baseLoggerOnce sync.Once
)

// HCLogger returns the solver's base logger, initializing it from the
// environment on first use. Callers should derive scoped loggers from it:
//
//	log := logging.HCLogger().Named("executor")
func HCLogger() hclog.Logger {
	baseLoggerOnce.Do(func() {
		baseLogger = newHCLogger()
	})
	return baseLogger
}

func newHCLogger() hclog.Logger {
	level := levelFromEnv()
	output := os.Stderr
	opts := &hclog.LoggerOptions{
		Name:            "ifds",
		Level:           level,
		Output:          output,
		IncludeLocation: level <= hclog.Debug,
	}
	if path := os.Getenv(EnvLogPath); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			opts.Output = f
		}
	}
	return hclog.New(opts)
}

func levelFromEnv() hclog.Level {
	raw := strings.TrimSpace(os.Getenv(EnvLog))
	if raw == "" {
		return hclog.Off
	}
	level := hclog.LevelFromString(raw)
	if level == hclog.NoLevel {
		return hclog.Off
	}
	return level
}
