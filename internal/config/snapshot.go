// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Snapshot is a frozen copy of the variables configuration is resolved from.
type Snapshot map[string]string

// NewSnapshot copies vars into a Snapshot.
func NewSnapshot(vars map[string]string) Snapshot {
	return Snapshot(maps.Clone(vars))
}

// Lookup returns the raw value of name. An empty value counts as absent.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok && v != ""
}

// LoadSnapshot captures the process environment. When dotenvPath is set the
// file is read and its variables fill the gaps the process environment
// leaves; variables already set in the process always win.
func LoadSnapshot(dotenvPath string) (Snapshot, error) {
	snapshot := Snapshot(env.ToMap(os.Environ()))
	if dotenvPath == "" {
		return snapshot, nil
	}

	dotenv, err := godotenv.Read(dotenvPath)
	if err != nil {
		return nil, fmt.Errorf("error reading dotenv file %s: %w", dotenvPath, err)
	}

	if err = mergo.Merge(&snapshot, Snapshot(dotenv)); err != nil {
		return nil, fmt.Errorf("error merging dotenv file %s: %w", dotenvPath, err)
	}

	return snapshot, nil
}
