// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// Flags holds the command-line settings of the process.
type Flags struct {
	// EnvFile is an optional dotenv file layered under the process environment.
	EnvFile string
	// Source, when set, overrides ENV_SOURCE.
	Source SourceKind
}

// sourceKindValue implements flag.Value and accepts only known sources.
type sourceKindValue struct {
	kind *SourceKind
}

func (v sourceKindValue) String() string {
	if v.kind == nil {
		return ""
	}
	return string(*v.kind)
}

func (v sourceKindValue) Set(s string) error {
	switch kind := SourceKind(s); kind {
	case SourceEnv, SourceHTTP, SourceDB:
		*v.kind = kind
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedSource, s)
	}
}

// ParseFlags parses args (without the program name).
//
// Flags:
//
//	-e/-env-file dotenv file path
//	-s/-source   environment source: env, http or db
func ParseFlags(name string, args []string) (Flags, error) {
	var f Flags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.EnvFile, "e", "", "Dotenv file path")
	fs.StringVar(&f.EnvFile, "env-file", "", "Dotenv file path (alias)")
	fs.Var(sourceKindValue{kind: &f.Source}, "s", "Environment source: env, http or db")
	fs.Var(sourceKindValue{kind: &f.Source}, "source", "Environment source (alias)")

	if err := fs.Parse(args); err != nil {
		return Flags{}, fmt.Errorf("error parsing flags: %w", err)
	}

	return f, nil
}

// Apply returns snapshot with the flag overrides written into it.
func (f Flags) Apply(snapshot Snapshot) Snapshot {
	if f.Source == "" {
		return snapshot
	}

	out := NewSnapshot(snapshot)
	out[envSourceVar] = string(f.Source)
	return out
}
