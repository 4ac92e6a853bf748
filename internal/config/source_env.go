// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/models"
)

type envSource struct {
	snapshot Snapshot
	logger   *logger.Logger
}

// NewEnvSource returns the [Source] that resolves every field from snapshot.
func NewEnvSource(snapshot Snapshot, log *logger.Logger) Source {
	return &envSource{snapshot: snapshot, logger: log}
}

func (s *envSource) Name() string { return string(SourceEnv) }

// Load resolves silently, so a single pass sees every field, then fails if
// any required field came back unspecified. The error names each of them.
func (s *envSource) Load(_ context.Context) (*models.Environment, error) {
	env, res, err := ResolveEnvironment(s.snapshot, s.logger)
	if err != nil {
		return nil, err
	}
	if err = res.Err(); err != nil {
		return nil, err
	}

	return env, nil
}

// ResolveEnvironment resolves every field of [models.Environment] from src in
// silent mode. Missing required fields are left at their zero value and
// reported as [Unspecified] in the returned [Resolution].
func ResolveEnvironment(src Snapshot, log *logger.Logger) (*models.Environment, *Resolution, error) {
	return resolveFields(src, environmentFields, silent, log)
}

// ResolveEnvironmentStrict resolves every field from src and stops at the
// first missing required field or coercion failure.
func ResolveEnvironmentStrict(src Snapshot) (*models.Environment, error) {
	env, _, err := resolveFields(src, environmentFields, strict, nil)
	return env, err
}
