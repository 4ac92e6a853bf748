// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// AttestationPolicy lists approved counterparties (attesters or requesters)
// per attestation type.
//
// The JSON form is a flat object: "any" is a boolean that approves everyone,
// "all" lists addresses approved for every type, and any other key is an
// attestation type mapped to its addresses.
type AttestationPolicy struct {
	Any    bool
	All    []string
	ByType map[string][]string
}

// Approves reports whether address is approved for attestationType.
func (p *AttestationPolicy) Approves(attestationType, address string) bool {
	if p == nil {
		return false
	}
	if p.Any {
		return true
	}

	for _, a := range p.All {
		if a == address {
			return true
		}
	}
	for _, a := range p.ByType[attestationType] {
		if a == address {
			return true
		}
	}

	return false
}

func (p AttestationPolicy) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.ByType)+2)
	for k, v := range p.ByType {
		out[k] = v
	}
	if p.Any {
		out["any"] = true
	}
	if p.All != nil {
		out["all"] = p.All
	}

	return json.Marshal(out)
}

func (p *AttestationPolicy) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	policy := AttestationPolicy{ByType: make(map[string][]string, len(raw))}
	for key, value := range raw {
		var err error
		switch key {
		case "any":
			err = json.Unmarshal(value, &policy.Any)
		case "all":
			err = json.Unmarshal(value, &policy.All)
		default:
			var addresses []string
			err = json.Unmarshal(value, &addresses)
			policy.ByType[key] = addresses
		}
		if err != nil {
			return fmt.Errorf("attestation policy key %q: %w", key, err)
		}
	}

	*p = policy
	return nil
}
