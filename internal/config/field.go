// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/models"
)

// State describes how a field obtained its value.
type State int

const (
	// Absent means an optional field had no value and no default.
	Absent State = iota
	// Unspecified is the sentinel a silent resolution returns for a missing
	// required field. It never collides with a legitimate value.
	Unspecified
	// Defaulted means an optional field fell back to its default.
	Defaulted
	// Set means the value was read from the source.
	Set
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Unspecified:
		return "UNSPECIFIED_ENV_VALUE"
	case Defaulted:
		return "defaulted"
	case Set:
		return "set"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Value is the outcome of resolving one field.
type Value struct {
	V     any
	State State
}

// IsUnspecified reports whether a required field was missing in silent mode.
func (v Value) IsUnspecified() bool { return v.State == Unspecified }

// IsSet reports whether the value came from the source itself.
func (v Value) IsSet() bool { return v.State == Set }

// hasValue reports whether V carries something to assign.
func (v Value) hasValue() bool { return v.State == Set || v.State == Defaulted }

// Dependency makes a field's requiredness a function of another field's
// resolved value.
type Dependency struct {
	Field string
	When  func(Value) bool
}

// enabled is the predicate used by flags resolved as [Boolean].
func enabled(v Value) bool {
	b, _ := v.V.(bool)
	return b
}

// FieldSpec declares one configuration input.
type FieldSpec struct {
	Name     string
	Type     SemanticType
	Required bool
	// Default is used when an optional field is absent.
	Default any
	// RequiredWhen, when set, replaces Required at resolution time.
	RequiredWhen *Dependency
	// Gate names a field that must be present for this one to be resolved.
	Gate string

	assign func(*models.Environment, any)
}

var errInvalidFieldSpec = errors.New("invalid field spec")

// Validate checks the declaration invariants of the spec.
func (s FieldSpec) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: empty name", errInvalidFieldSpec)
	case s.Type == nil:
		return fmt.Errorf("%w: %s has no type", errInvalidFieldSpec, s.Name)
	case s.Required && s.Default != nil:
		return fmt.Errorf("%w: %s is required and has a default", errInvalidFieldSpec, s.Name)
	case s.RequiredWhen != nil && (s.Required || s.RequiredWhen.When == nil || s.RequiredWhen.Field == ""):
		return fmt.Errorf("%w: %s has an incomplete dependency", errInvalidFieldSpec, s.Name)
	}
	return nil
}

func (s FieldSpec) withRequired(required bool) FieldSpec {
	s.Required = required
	return s
}

type mode int

const (
	strict mode = iota
	silent
)

// ResolveStrict resolves spec against src. A missing required field fails
// with [ErrMissingRequiredField] and every coercion failure is returned.
func ResolveStrict(src Snapshot, spec FieldSpec) (Value, error) {
	return resolveField(src, spec, strict, nil)
}

// ResolveSilent resolves spec against src without failing on missing
// required fields: those yield the [Unspecified] sentinel. A JSON value that
// does not parse is logged and treated as absent. Other coercion failures
// are still returned.
func ResolveSilent(src Snapshot, spec FieldSpec, log *logger.Logger) (Value, error) {
	return resolveField(src, spec, silent, log)
}

func resolveField(src Snapshot, spec FieldSpec, m mode, log *logger.Logger) (Value, error) {
	raw, present := src.Lookup(spec.Name)
	if !present {
		switch {
		case spec.Required && m == silent:
			return Value{State: Unspecified}, nil
		case spec.Required:
			return Value{}, missingField(spec.Name)
		case spec.Default != nil:
			return Value{V: spec.Default, State: Defaulted}, nil
		default:
			return Value{State: Absent}, nil
		}
	}

	v, err := Coerce(spec.Type, raw)
	if err != nil {
		if m == silent && isJSON(spec.Type) {
			if log != nil {
				log.Warn().Err(err).Str("field", spec.Name).Msg("parsing JSON env failed")
			}
			return Value{State: Absent}, nil
		}
		return Value{}, &FieldError{Field: spec.Name, Err: err}
	}

	return Value{V: v, State: Set}, nil
}
