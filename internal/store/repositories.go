// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-attestation-kit/internal/logger"

// Repositories groups every repository backed by one [DB].
type Repositories struct {
	PingRepository PingRepository
}

// NewRepositories constructs the repositories over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		PingRepository: NewPingRepository(db, log),
	}
}
