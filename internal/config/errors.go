// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-attestation-kit/models"
)

var (
	// ErrMissingRequiredField indicates a required field was absent (or empty).
	ErrMissingRequiredField = errors.New("expected environment variable")
	// ErrCoercion indicates a raw value could not be converted to its type.
	ErrCoercion = errors.New("coercion failed")
	// ErrRemoteConfig indicates the remote source was unreachable or did not
	// report success.
	ErrRemoteConfig = errors.New("environment config retrieval failed")

	// ErrUnsupportedSource indicates ENV_SOURCE does not select a usable source.
	ErrUnsupportedSource = errors.New("unsupported environment source")
	// ErrUnselectedSource indicates ENV_SOURCE is not set at all.
	ErrUnselectedSource = fmt.Errorf("%w: no environment source configured", ErrUnsupportedSource)
	// ErrSourceNotSupported is returned for the database source, which is
	// reserved but not implemented.
	ErrSourceNotSupported = fmt.Errorf("%w: environment config from database not yet supported", ErrUnsupportedSource)

	// ErrUnknownContractBinding indicates a contract has no address for a network.
	ErrUnknownContractBinding = errors.New("unknown contract binding")
	// ErrUnknownProvider indicates no provider endpoint serves a network.
	ErrUnknownProvider = errors.New("unknown provider")
)

// FieldError reports a failure to resolve a single named field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func missingField(name string) error {
	return &FieldError{Field: name, Err: ErrMissingRequiredField}
}

// RemoteConfigError reports a failed remote configuration fetch.
type RemoteConfigError struct {
	URL string
	Err error
}

func (e *RemoteConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("environment config retrieval from %s failed", e.URL)
	}
	return fmt.Sprintf("environment config retrieval from %s failed: %v", e.URL, e.Err)
}

func (e *RemoteConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemoteConfig}
	}
	return []error{ErrRemoteConfig, e.Err}
}

// BindingError reports a failed provider or contract lookup.
type BindingError struct {
	Contract models.ContractName
	Network  models.Network
	Err      error
}

func (e *BindingError) Error() string {
	if e.Contract == "" {
		return fmt.Sprintf("%v for network %s", e.Err, e.Network)
	}
	return fmt.Sprintf("%v for %s on network %s", e.Err, e.Contract, e.Network)
}

func (e *BindingError) Unwrap() error { return e.Err }
