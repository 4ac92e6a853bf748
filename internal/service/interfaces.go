// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the operations built on top of the resolved
// environment: heartbeat bookkeeping and key verification.
package service

import (
	"context"

	"github.com/MKhiriev/go-attestation-kit/models"
)

// EnvironmentProvider hands out the resolved process environment.
type EnvironmentProvider interface {
	Environment(ctx context.Context) (*models.Environment, error)
}

// HeartbeatService records messaging-layer pings and reports whether they
// stopped arriving.
type HeartbeatService interface {
	// RecordPing stores a ping answered by responder.
	RecordPing(ctx context.Context, responder string) (models.WhisperPing, error)

	// Alerting reports whether no ping was recorded within the alert interval.
	Alerting(ctx context.Context) (bool, error)
}

// AccessService checks presented keys against the configured digests.
type AccessService interface {
	// VerifyAPIKey reports whether key hashes to API_KEY_SHA256.
	VerifyAPIKey(ctx context.Context, key string) (bool, error)

	// VerifyWebhookKey reports whether key hashes to TX_SERVICE_KEY_SHA256.
	VerifyWebhookKey(ctx context.Context, key string) (bool, error)
}
