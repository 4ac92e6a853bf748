// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/mock"
	"github.com/MKhiriev/go-attestation-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func newTestProvider(t *testing.T) (*Provider, *mock.MockSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mock.NewMockSource(ctrl)
	source.EXPECT().Name().Return("test").AnyTimes()

	return NewProvider(source, logger.Nop()), source
}

func testEnvironment() *models.Environment {
	return &models.Environment{
		AppID: "attestation-kit_test",
		Providers: models.Providers{
			models.Mainnet: "https://mainnet.rpc",
		},
		Contracts: models.Contracts{
			"AttestationLogic": {models.Rinkeby: {Address: "0xbbb"}},
		},
	}
}

func TestProvider_ConcurrentCallersShareOneResolution(t *testing.T) {
	provider, source := newTestProvider(t)
	env := testEnvironment()
	release := make(chan struct{})

	source.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (*models.Environment, error) {
		<-release
		return env, nil
	}).Times(1)

	const callers = 32
	results := make([]*models.Environment, callers)
	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			got, err := provider.Environment(context.Background())
			results[i] = got
			return err
		})
	}

	close(release)
	require.NoError(t, g.Wait())

	for _, got := range results {
		assert.Same(t, env, got)
	}
	assert.Equal(t, Resolved, provider.State())
}

func TestProvider_LaterCallsReturnMemoizedValue(t *testing.T) {
	provider, source := newTestProvider(t)
	env := testEnvironment()
	source.EXPECT().Load(gomock.Any()).Return(env, nil).Times(1)

	assert.Equal(t, Unresolved, provider.State())

	first, err := provider.Environment(context.Background())
	require.NoError(t, err)
	second, err := provider.Environment(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestProvider_FailureIsMemoized(t *testing.T) {
	provider, source := newTestProvider(t)
	cause := errors.New("boom")
	source.EXPECT().Load(gomock.Any()).Return(nil, cause).Times(1)

	_, err := provider.Environment(context.Background())
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "error resolving environment")

	_, again := provider.Environment(context.Background())
	assert.Same(t, err, again)
	assert.Equal(t, Failed, provider.State())
}

func TestProvider_NilEnvironmentIsAFailure(t *testing.T) {
	provider, source := newTestProvider(t)
	source.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)

	env, err := provider.Environment(context.Background())

	require.Error(t, err)
	assert.Nil(t, env)
	assert.Equal(t, Failed, provider.State())
}

func TestProvider_CancelledCallerStopsWaiting(t *testing.T) {
	provider, source := newTestProvider(t)
	env := testEnvironment()
	release := make(chan struct{})
	loadCtx := make(chan context.Context, 1)

	source.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (*models.Environment, error) {
		loadCtx <- ctx
		<-release
		return env, nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Environment(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The shared resolution is not cancelled with the caller.
	assert.NoError(t, (<-loadCtx).Err())
	close(release)

	got, err := provider.Environment(context.Background())
	require.NoError(t, err)
	assert.Same(t, env, got)
}

func TestProvider_MustEnvironmentPanicsOnFailure(t *testing.T) {
	provider, source := newTestProvider(t)
	source.EXPECT().Load(gomock.Any()).Return(nil, ErrSourceNotSupported).Times(1)

	assert.Panics(t, func() { provider.MustEnvironment(context.Background()) })
}

func TestProvider_Lookups(t *testing.T) {
	provider, source := newTestProvider(t)
	source.EXPECT().Load(gomock.Any()).Return(testEnvironment(), nil).Times(1)
	ctx := context.Background()

	address, err := provider.ContractAddress(ctx, "AttestationLogic", models.Rinkeby)
	require.NoError(t, err)
	assert.Equal(t, "0xbbb", address)

	_, err = provider.ContractAddress(ctx, "AttestationLogic", models.Mainnet)
	assert.ErrorIs(t, err, ErrUnknownContractBinding)

	url, err := provider.ProviderURL(ctx, models.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.rpc", url)

	_, err = provider.ProviderURL(ctx, models.Kovan)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestProvider_OverDBSourceFails(t *testing.T) {
	provider := NewProvider(NewDispatcher(NewSnapshot(map[string]string{"ENV_SOURCE": "db"}), logger.Nop()), logger.Nop())

	_, err := provider.Environment(context.Background())

	assert.ErrorIs(t, err, ErrSourceNotSupported)
	assert.Equal(t, Failed, provider.State())
}
