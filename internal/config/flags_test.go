// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Flags
		wantErr bool
	}{
		{name: "none", args: nil, want: Flags{}},
		{name: "short", args: []string{"-e", ".env", "-s", "http"}, want: Flags{EnvFile: ".env", Source: SourceHTTP}},
		{name: "long", args: []string{"-env-file=prod.env", "-source=db"}, want: Flags{EnvFile: "prod.env", Source: SourceDB}},
		{name: "unknown source", args: []string{"-s", "s3"}, wantErr: true},
		{name: "unknown flag", args: []string{"-x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags("attestation-kit", tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_UnknownSourceIsUnsupported(t *testing.T) {
	_, err := ParseFlags("attestation-kit", []string{"-source", "s3"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrUnsupportedSource.Error())
}

func TestFlags_Apply(t *testing.T) {
	base := NewSnapshot(map[string]string{"ENV_SOURCE": "env"})

	assert.Equal(t, base, Flags{}.Apply(base))

	got := Flags{Source: SourceHTTP}.Apply(base)
	assert.Equal(t, "http", got["ENV_SOURCE"])
	assert.Equal(t, "env", base["ENV_SOURCE"])
}
