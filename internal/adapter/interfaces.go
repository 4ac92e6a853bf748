// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound gateway to the external transaction
// service.
//
// [TxService] is configured from the resolved environment: every call awaits
// the environment through an [EnvironmentProvider] and reads the
// txService block from it. When the block is not configured, calls fail with
// [ErrTxServiceNotConfigured] without issuing a request.
//
// A non-2xx reply is returned as a [*StatusError] that unwraps to the
// sentinel for its status, so callers can use [errors.Is] (e.g. [ErrNotFound]
// for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-attestation-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// EnvironmentProvider hands out the resolved process environment.
// *config.Provider implements it.
type EnvironmentProvider interface {
	Environment(ctx context.Context) (*models.Environment, error)
}

// TxService submits and inspects transactions through the transaction
// service. Every method returns the raw JSON body of a successful response.
type TxService interface {
	// GetTx fetches one transaction by id.
	GetTx(ctx context.Context, id int64) (json.RawMessage, error)

	// GetTxs lists the transactions matching query.
	GetTxs(ctx context.Context, query models.TxQuery) (json.RawMessage, error)

	// SendTx asks the service to submit a contract call.
	SendTx(ctx context.Context, req models.SendTxRequest) (json.RawMessage, error)

	// DestroyTx cancels a pending transaction by id.
	DestroyTx(ctx context.Context, id int64) (json.RawMessage, error)
}
