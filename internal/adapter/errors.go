// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTxServiceNotConfigured is returned when TX_SERVICE_ADDRESS is not set.
	ErrTxServiceNotConfigured = errors.New("tx service not configured")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("api token rejected")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("tx not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("tx rejected")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("tx service unavailable")
)
