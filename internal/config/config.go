// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package config

import (
	"os"
	"strconv"

	"github.com/DataDog/dsa-course-go/log"
)

// Configuration environment variables
const (
	EnvCheckInvariants = "DSA_CHECK_INVARIANTS"
	EnvTraceOperations = "DSA_TRACE_OPERATIONS"
)

// Default values
const (
	DefaultCheckInvariants = false
	DefaultTraceOperations = false
)

// ContainerConfig holds the run-time knobs shared by the containers. It is
// captured once when a container is created.
type ContainerConfig struct {
	// CheckInvariants makes every mutating operation verify the structural
	// invariants of the container afterwards, panicking on violation.
	CheckInvariants bool
	// TraceOperations emits a trace log line for every mutating operation.
	TraceOperations bool
}

// NewContainerConfig creates and returns a new container configuration by
// reading the env
func NewContainerConfig() ContainerConfig {
	return ContainerConfig{
		CheckInvariants: readBool(EnvCheckInvariants, DefaultCheckInvariants),
		TraceOperations: readBool(EnvTraceOperations, DefaultTraceOperations),
	}
}

func readBool(name string, defaultValue bool) bool {
	val, present := os.LookupEnv(name)
	if !present || val == "" {
		return defaultValue
	}
	enabled, err := strconv.ParseBool(val)
	if err != nil {
		_ = log.Errorf("config: could not parse %s=%q. Defaulting to %t: %w", name, val, defaultValue, err)
		return defaultValue
	}
	return enabled
}
