// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

// Package log is the logging facade used by the containers in this module. It
// forwards to a swappable [Backend], which defaults to the datadog-agent
// logger.
package log

import (
	"fmt"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"go.uber.org/atomic"
)

// Backend is the set of functions the package-level helpers forward to.
// Every field must be set.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var backend = atomic.NewPointer(&defaultBackend)

var defaultBackend = Backend{
	Trace: ddlog.Tracef,
	Debug: ddlog.Debugf,
	Info:  ddlog.Infof,
	Warn: func(format string, args ...any) {
		_ = ddlog.Warnf(format, args...)
	},
	Errorf: func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		_ = ddlog.Error(err.Error())
		return err
	},
	Criticalf: func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		_ = ddlog.Critical(err.Error())
		return err
	},
}

// SetBackend replaces the active [Backend]. It is safe to call concurrently
// with logging.
func SetBackend(b Backend) {
	backend.Store(&b)
}

// ResetBackend restores the datadog-agent backed default.
func ResetBackend() {
	backend.Store(&defaultBackend)
}

// Trace logs at trace level.
func Trace(format string, args ...any) {
	backend.Load().Trace(format, args...)
}

// Debug logs at debug level.
func Debug(format string, args ...any) {
	backend.Load().Debug(format, args...)
}

// Info logs at info level.
func Info(format string, args ...any) {
	backend.Load().Info(format, args...)
}

// Warn logs at warning level.
func Warn(format string, args ...any) {
	backend.Load().Warn(format, args...)
}

// Errorf logs at error level and returns the formatted message as an error.
// The default backend honors %w.
func Errorf(format string, args ...any) error {
	return backend.Load().Errorf(format, args...)
}

// Criticalf logs at critical level and returns the formatted message as an
// error. The default backend honors %w.
func Criticalf(format string, args ...any) error {
	return backend.Load().Criticalf(format, args...)
}
