// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStrict_MissingRequired(t *testing.T) {
	spec := FieldSpec{Name: "APP_ID", Type: Text, Required: true}

	for name, src := range map[string]Snapshot{
		"unset": NewSnapshot(nil),
		"empty": NewSnapshot(map[string]string{"APP_ID": ""}),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ResolveStrict(src, spec)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingRequiredField)
			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, "APP_ID", fieldErr.Field)
			assert.Contains(t, err.Error(), "APP_ID")
		})
	}
}

func TestResolveSilent_MissingRequiredYieldsSentinel(t *testing.T) {
	spec := FieldSpec{Name: "APP_ID", Type: Text, Required: true}

	v, err := ResolveSilent(NewSnapshot(nil), spec, logger.Nop())

	require.NoError(t, err)
	assert.True(t, v.IsUnspecified())
	assert.Nil(t, v.V)
	assert.Equal(t, "UNSPECIFIED_ENV_VALUE", v.State.String())
}

func TestResolve_PresentValues(t *testing.T) {
	src := NewSnapshot(map[string]string{
		"APP_ID":                "kit",
		"WHISPER_POLL_INTERVAL": "2500",
		"LOG_WHISPER_SQL":       "yes",
	})

	tests := []struct {
		name string
		spec FieldSpec
		want any
	}{
		{name: "required text", spec: FieldSpec{Name: "APP_ID", Type: Text, Required: true}, want: "kit"},
		{name: "optional int over default", spec: FieldSpec{Name: "WHISPER_POLL_INTERVAL", Type: Integer, Default: int64(5000)}, want: int64(2500)},
		{name: "optional bool", spec: FieldSpec{Name: "LOG_WHISPER_SQL", Type: Boolean, Default: false}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strictV, err := ResolveStrict(src, tt.spec)
			require.NoError(t, err)
			silentV, err := ResolveSilent(src, tt.spec, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, Value{V: tt.want, State: Set}, strictV)
			assert.Equal(t, strictV, silentV)
		})
	}
}

func TestResolve_OptionalAbsent(t *testing.T) {
	src := NewSnapshot(nil)

	withDefault, err := ResolveStrict(src, FieldSpec{Name: "PIPELINE_STAGE", Type: Text, Default: "production"})
	require.NoError(t, err)
	assert.Equal(t, Value{V: "production", State: Defaulted}, withDefault)

	withoutDefault, err := ResolveStrict(src, FieldSpec{Name: "LOG_LEVEL", Type: Text})
	require.NoError(t, err)
	assert.Equal(t, Value{State: Absent}, withoutDefault)
	assert.False(t, withoutDefault.IsSet())
	assert.False(t, withoutDefault.IsUnspecified())
}

func TestResolveSilent_JSONFailureIsLoggedWarning(t *testing.T) {
	log, buf := bufferLogger(t)
	src := NewSnapshot(map[string]string{"PROVIDERS": "{broken"})
	spec := FieldSpec{Name: "PROVIDERS", Type: JSON[map[string]string](), Required: true}

	v, err := ResolveSilent(src, spec, log)

	require.NoError(t, err)
	assert.Equal(t, Absent, v.State)
	assert.Contains(t, buf.String(), "parsing JSON env failed")
	assert.Contains(t, buf.String(), "PROVIDERS")
	assert.NotContains(t, buf.String(), "{broken")
}

func TestResolveStrict_JSONFailureIsError(t *testing.T) {
	src := NewSnapshot(map[string]string{"PROVIDERS": "{broken"})
	spec := FieldSpec{Name: "PROVIDERS", Type: JSON[map[string]string](), Required: true}

	_, err := ResolveStrict(src, spec)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCoercion)
	assert.Contains(t, err.Error(), "PROVIDERS")
}

func TestResolveSilent_NonJSONFailureStillPropagates(t *testing.T) {
	src := NewSnapshot(map[string]string{"WHISPER_POLL_INTERVAL": "soon"})
	spec := FieldSpec{Name: "WHISPER_POLL_INTERVAL", Type: Integer, Default: int64(5000)}

	_, err := ResolveSilent(src, spec, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCoercion)
}

func TestFieldSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    FieldSpec
		wantErr bool
	}{
		{name: "required", spec: FieldSpec{Name: "A", Type: Text, Required: true}},
		{name: "optional with default", spec: FieldSpec{Name: "A", Type: Text, Default: "x"}},
		{name: "conditional", spec: FieldSpec{Name: "A", Type: Text, RequiredWhen: &Dependency{Field: "B", When: enabled}}},
		{name: "no name", spec: FieldSpec{Type: Text}, wantErr: true},
		{name: "no type", spec: FieldSpec{Name: "A"}, wantErr: true},
		{name: "required with default", spec: FieldSpec{Name: "A", Type: Text, Required: true, Default: "x"}, wantErr: true},
		{name: "required and conditional", spec: FieldSpec{Name: "A", Type: Text, Required: true, RequiredWhen: &Dependency{Field: "B", When: enabled}}, wantErr: true},
		{name: "dependency without predicate", spec: FieldSpec{Name: "A", Type: Text, RequiredWhen: &Dependency{Field: "B"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidFieldSpec)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPingPassword_RequiredOnlyWhenHeartbeatEnabled(t *testing.T) {
	tests := []struct {
		name        string
		enabled     string
		password    string
		wantMissing bool
	}{
		{name: "disabled without password", enabled: "false"},
		{name: "unset flag without password", enabled: ""},
		{name: "enabled without password", enabled: "true", wantMissing: true},
		{name: "enabled short form without password", enabled: "Y", wantMissing: true},
		{name: "enabled with password", enabled: "true", password: "ping-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := snapshotWith(map[string]string{
				"WHISPER_PING_ENABLED":  tt.enabled,
				"WHISPER_PING_PASSWORD": tt.password,
			})

			env, err := ResolveEnvironmentStrict(src)

			if tt.wantMissing {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingRequiredField)
				assert.Contains(t, err.Error(), "WHISPER_PING_PASSWORD")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.password, env.Whisper.Ping.Password)
		})
	}
}
