// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/models"
)

// ProviderState is the lifecycle state of a [Provider].
type ProviderState int32

const (
	Unresolved ProviderState = iota
	Resolving
	Resolved
	Failed
)

func (s ProviderState) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("ProviderState(%d)", int32(s))
}

// Provider resolves the environment once and hands the same result to every
// caller for the rest of the process lifetime.
//
// The first call to [Provider.Environment] starts the single source load.
// Callers arriving while it runs wait for that load; none starts another.
// The outcome, value or error, is final: a failed resolution is not retried.
// The returned *models.Environment is shared and must not be modified.
type Provider struct {
	source Source
	logger *logger.Logger

	once  sync.Once
	done  chan struct{}
	state atomic.Int32

	env *models.Environment
	err error
}

// NewProvider constructs a Provider that will resolve from source.
func NewProvider(source Source, log *logger.Logger) *Provider {
	return &Provider{
		source: source,
		logger: log,
		done:   make(chan struct{}),
	}
}

// State reports where the Provider is in its lifecycle.
func (p *Provider) State() ProviderState {
	return ProviderState(p.state.Load())
}

// Environment returns the resolved environment, starting the resolution on
// the first call. Cancelling ctx stops this caller from waiting; it does not
// cancel the resolution other callers share.
func (p *Provider) Environment(ctx context.Context) (*models.Environment, error) {
	p.once.Do(func() {
		p.state.Store(int32(Resolving))
		go p.resolve(context.WithoutCancel(ctx))
	})

	select {
	case <-p.done:
		return p.env, p.err
	default:
	}

	select {
	case <-p.done:
		return p.env, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// MustEnvironment is like Environment but panics if resolution fails.
func (p *Provider) MustEnvironment(ctx context.Context) *models.Environment {
	env, err := p.Environment(ctx)
	if err != nil {
		panic(err)
	}
	return env
}

func (p *Provider) resolve(ctx context.Context) {
	defer close(p.done)

	env, err := p.source.Load(ctx)
	if err == nil && env == nil {
		err = fmt.Errorf("source %s returned no environment", p.source.Name())
	}
	if err != nil {
		p.err = fmt.Errorf("error resolving environment: %w", err)
		p.state.Store(int32(Failed))
		p.logger.Error().Err(err).Str("source", p.source.Name()).Msg("environment resolution failed")
		return
	}

	p.env = env
	p.state.Store(int32(Resolved))
	p.logger.Info().Str("source", p.source.Name()).Str("app_id", env.AppID).Msg("environment resolved")
}

// ContractAddress awaits the environment and looks up the address of
// contract on network with [ContractAddressFor].
func (p *Provider) ContractAddress(ctx context.Context, contract models.ContractName, network models.Network) (string, error) {
	env, err := p.Environment(ctx)
	if err != nil {
		return "", err
	}
	return ContractAddressFor(env, contract, network)
}

// ProviderURL awaits the environment and looks up the provider endpoint of
// network with [ProviderFor].
func (p *Provider) ProviderURL(ctx context.Context, network models.Network) (string, error) {
	env, err := p.Environment(ctx)
	if err != nil {
		return "", err
	}
	return ProviderFor(env, network)
}
