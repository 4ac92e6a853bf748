// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const envSourceVar = "ENV_SOURCE"

// SourceKind selects where the environment is resolved from.
type SourceKind string

const (
	SourceEnv  SourceKind = "env"
	SourceHTTP SourceKind = "http"
	SourceDB   SourceKind = "db"
)

// Bootstrap holds the settings needed before any configuration field can be
// resolved: which source to use and how to reach it.
type Bootstrap struct {
	// Source selects the configuration source.
	// Env: ENV_SOURCE
	Source SourceKind `env:"ENV_SOURCE"`

	// HTTPTimeout bounds the request of the HTTP source.
	// Env: ENV_SOURCE_HTTP_TIMEOUT
	HTTPTimeout time.Duration `env:"ENV_SOURCE_HTTP_TIMEOUT" envDefault:"15s"`
}

// ParseBootstrap reads [Bootstrap] from src using caarlos0/env.
func ParseBootstrap(src Snapshot) (Bootstrap, error) {
	var b Bootstrap
	if err := env.ParseWithOptions(&b, env.Options{Environment: src}); err != nil {
		return Bootstrap{}, fmt.Errorf("error getting bootstrap configs: %w", err)
	}
	return b, nil
}
