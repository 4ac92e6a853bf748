// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-attestation-kit/models"

// ApplyLocalOverrides writes every local field onto remote except those that
// resolved to [Unspecified]. Set and defaulted fields replace the remote
// value. Absent fields reset it to the zero value; a closed transaction
// service gate drops the remote block. remote is modified and returned.
func ApplyLocalOverrides(remote *models.Environment, local *Resolution) *models.Environment {
	for _, spec := range environmentFields {
		v, ok := local.Value(spec.Name)
		if !ok || v.IsUnspecified() || spec.assign == nil {
			continue
		}
		spec.assign(remote, v.V)
	}

	return remote
}
