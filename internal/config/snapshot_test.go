// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Lookup(t *testing.T) {
	s := NewSnapshot(map[string]string{"SET": "value", "EMPTY": ""})

	v, ok := s.Lookup("SET")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = s.Lookup("EMPTY")
	assert.False(t, ok)

	_, ok = s.Lookup("MISSING")
	assert.False(t, ok)
}

func TestNewSnapshot_IsACopy(t *testing.T) {
	vars := map[string]string{"APP_ID": "kit"}
	s := NewSnapshot(vars)
	vars["APP_ID"] = "changed"

	assert.Equal(t, "kit", s["APP_ID"])
}

func TestLoadSnapshot_ProcessEnvironment(t *testing.T) {
	t.Setenv("ATTESTATION_KIT_TEST_VAR", "from-process")

	s, err := LoadSnapshot("")

	require.NoError(t, err)
	assert.Equal(t, "from-process", s["ATTESTATION_KIT_TEST_VAR"])
}

func TestLoadSnapshot_DotenvFillsGaps(t *testing.T) {
	t.Setenv("ATTESTATION_KIT_TEST_APP_ID", "from-process")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"ATTESTATION_KIT_TEST_APP_ID=from-file\nATTESTATION_KIT_TEST_PG_URL=postgres://file/kit\n",
	), 0o600))

	s, err := LoadSnapshot(path)

	require.NoError(t, err)
	assert.Equal(t, "from-process", s["ATTESTATION_KIT_TEST_APP_ID"])
	assert.Equal(t, "postgres://file/kit", s["ATTESTATION_KIT_TEST_PG_URL"])
}

func TestLoadSnapshot_MissingDotenv(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}
