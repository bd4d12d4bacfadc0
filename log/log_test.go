// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

package log_test

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/DataDog/dsa-course-go/log"
	"github.com/stretchr/testify/require"
)

type levelName string

const (
	TRACE    levelName = "Trace"
	DEBUG    levelName = "Debug"
	INFO     levelName = "Info"
	WARN     levelName = "Warn"
	ERROR    levelName = "Errorf"
	CRITICAL levelName = "Criticalf"
)

type recorder struct {
	mu    sync.Mutex
	calls map[levelName]string
}

func newRecorder(t *testing.T) *recorder {
	r := &recorder{calls: make(map[levelName]string)}
	log.SetBackend(log.Backend{
		Trace:     r.logger(TRACE),
		Debug:     r.logger(DEBUG),
		Info:      r.logger(INFO),
		Warn:      r.logger(WARN),
		Errorf:    r.errLogger(ERROR),
		Criticalf: r.errLogger(CRITICAL),
	})
	t.Cleanup(log.ResetBackend)
	return r
}

func (r *recorder) logger(level levelName) func(string, ...any) {
	return func(format string, args ...any) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls[level] = fmt.Sprintf(format, args...)
	}
}

func (r *recorder) errLogger(level levelName) func(string, ...any) error {
	return func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls[level] = err.Error()
		return err
	}
}

func TestBackend(t *testing.T) {
	for name, logger := range map[levelName]func(string, ...any){
		TRACE: log.Trace,
		DEBUG: log.Debug,
		INFO:  log.Info,
		WARN:  log.Warn,
	} {
		t.Run(string(name), func(t *testing.T) {
			rec := newRecorder(t)
			randomInt := rand.Int()

			logger("%s %d", name, randomInt)

			require.Len(t, rec.calls, 1)
			require.Equal(t, fmt.Sprintf("%s %d", name, randomInt), rec.calls[name])
		})
	}

	for name, logger := range map[levelName]func(string, ...any) error{
		ERROR:    log.Errorf,
		CRITICAL: log.Criticalf,
	} {
		t.Run(string(name), func(t *testing.T) {
			rec := newRecorder(t)
			cause := errors.New("cause")
			randomInt := rand.Int()

			err := logger("%s %d: %w", name, randomInt, cause)

			expectedMessage := fmt.Sprintf("%s %d: %v", name, randomInt, cause)
			require.Equal(t, expectedMessage, err.Error())
			require.Equal(t, cause, errors.Unwrap(err))
			require.Len(t, rec.calls, 1)
			require.Equal(t, expectedMessage, rec.calls[name])
		})
	}
}

func TestDefaultBackend(t *testing.T) {
	log.ResetBackend()
	cause := errors.New("cause")

	t.Run("Errorf", func(t *testing.T) {
		err := log.Errorf("wrapped: %w", cause)
		require.ErrorIs(t, err, cause)
		require.Equal(t, "wrapped: cause", err.Error())
	})

	t.Run("Criticalf", func(t *testing.T) {
		err := log.Criticalf("wrapped: %w", cause)
		require.ErrorIs(t, err, cause)
	})

	t.Run("levels", func(t *testing.T) {
		require.NotPanics(t, func() {
			log.Trace("trace %d", 1)
			log.Debug("debug %d", 2)
			log.Info("info %d", 3)
			log.Warn("warn %d", 4)
		})
	})
}

func TestSetBackendConcurrently(t *testing.T) {
	rec := newRecorder(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			log.Info("goroutine %d", i)
		}()
		go func() {
			defer wg.Done()
			log.SetBackend(log.Backend{
				Trace:     rec.logger(TRACE),
				Debug:     rec.logger(DEBUG),
				Info:      rec.logger(INFO),
				Warn:      rec.logger(WARN),
				Errorf:    rec.errLogger(ERROR),
				Criticalf: rec.errLogger(CRITICAL),
			})
		}()
	}
	wg.Wait()

	require.Contains(t, rec.calls, INFO)
}
