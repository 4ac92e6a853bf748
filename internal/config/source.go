// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"

	"github.com/MKhiriev/go-attestation-kit/models"
)

//go:generate mockgen -source=source.go -destination=../mock/source_mock.go -package=mock

// Source builds a complete [models.Environment] from one origin.
type Source interface {
	// Name is the ENV_SOURCE value selecting this source.
	Name() string

	// Load resolves the environment. It is called at most once per process
	// by [Provider].
	Load(ctx context.Context) (*models.Environment, error)
}
