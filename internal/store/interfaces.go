// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the heartbeat bookkeeping of the messaging layer in
// PostgreSQL.
package store

import (
	"context"

	"github.com/MKhiriev/go-attestation-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PingRepository records and counts heartbeat pings in the whisper_pings table.
type PingRepository interface {
	// CreatePing stores a ping answered by responder and returns the stored row.
	CreatePing(ctx context.Context, responder string) (models.WhisperPing, error)

	// CountPingsSince counts the pings created within interval of now.
	// interval is a PostgreSQL interval literal such as "5 minutes".
	CountPingsSince(ctx context.Context, interval string) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
