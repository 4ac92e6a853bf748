// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"

	"github.com/MKhiriev/go-attestation-kit/models"
)

type dbSource struct{}

// NewDBSource returns the database [Source]. It is reserved: Load always
// fails with [ErrSourceNotSupported] and never touches a database.
func NewDBSource() Source {
	return dbSource{}
}

func (dbSource) Name() string { return string(SourceDB) }

func (dbSource) Load(context.Context) (*models.Environment, error) {
	return nil, ErrSourceNotSupported
}
