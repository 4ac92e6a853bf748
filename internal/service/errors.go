// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrHeartbeatDisabled is returned when WHISPER_PING_ENABLED is false.
	ErrHeartbeatDisabled = errors.New("heartbeat monitoring is disabled")

	// ErrWebhookKeyNotConfigured is returned when the tx service block, and
	// with it the webhook key digest, is not configured.
	ErrWebhookKeyNotConfigured = errors.New("webhook key digest not configured")
)
