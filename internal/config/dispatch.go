// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/models"
)

// Dispatcher is the [Source] that delegates to the one selected by
// ENV_SOURCE.
type Dispatcher struct {
	snapshot Snapshot
	logger   *logger.Logger
}

// NewDispatcher constructs a Dispatcher over snapshot.
func NewDispatcher(snapshot Snapshot, log *logger.Logger) *Dispatcher {
	return &Dispatcher{snapshot: snapshot, logger: log}
}

func (d *Dispatcher) Name() string { return "dispatcher" }

// Select parses the bootstrap settings and returns the selected source.
// A missing selector fails with [ErrUnselectedSource], an unknown one with
// [ErrUnsupportedSource].
func (d *Dispatcher) Select() (Source, error) {
	b, err := ParseBootstrap(d.snapshot)
	if err != nil {
		return nil, err
	}

	switch b.Source {
	case "":
		return nil, ErrUnselectedSource
	case SourceEnv:
		return NewEnvSource(d.snapshot, d.logger), nil
	case SourceHTTP:
		return NewHTTPSource(d.snapshot, b.HTTPTimeout, d.logger), nil
	case SourceDB:
		return NewDBSource(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, b.Source)
	}
}

// Load implements [Source]. Source selection happens before any field is
// resolved.
func (d *Dispatcher) Load(ctx context.Context) (*models.Environment, error) {
	source, err := d.Select()
	if err != nil {
		return nil, err
	}

	d.logger.Info().Str("source", source.Name()).Msg("resolving environment")
	return source.Load(ctx)
}
