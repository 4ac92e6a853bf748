// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Environment is the fully resolved process configuration.
//
// It is built once by a configuration source, optionally overlaid with local
// overrides, and then shared read-only for the lifetime of the process.
// JSON tags follow the document served by the remote configuration endpoint.
type Environment struct {
	// AppID identifies the deployment (e.g. "attestation-kit_dev_bob").
	// Env: APP_ID
	AppID string `json:"appId"`

	// DBURL is the PostgreSQL connection string.
	// Env: PG_URL
	DBURL string `json:"dbUrl"`

	// NodeEnv is the runtime environment name ("development", "production").
	// Env: NODE_ENV
	NodeEnv string `json:"nodeEnv"`

	// PipelineStage defaults to "production".
	// Env: PIPELINE_STAGE
	PipelineStage string `json:"pipelineStage,omitempty"`

	// SourceVersion defaults to "Unspecified".
	// Env: SOURCE_VERSION
	SourceVersion string `json:"sourceVersion,omitempty"`

	// APIKeySHA256 is the hex SHA-256 digest of the access key.
	// Env: API_KEY_SHA256
	APIKeySHA256 string `json:"apiKey"`

	Logs Logs `json:"logs"`

	// Env: APPROVED_ATTESTERS
	ApprovedAttesters *AttestationPolicy `json:"approved_attesters,omitempty"`
	// Env: APPROVED_REQUESTERS
	ApprovedRequesters *AttestationPolicy `json:"approved_requesters,omitempty"`
	// AttesterRewards maps an attestation type (or "all") to a minimum reward.
	// Env: ATTESTER_MIN_REWARDS
	AttesterRewards map[string]decimal.Decimal `json:"attester_rewards,omitempty"`

	// Providers maps a network to a JSON-RPC endpoint.
	// Env: PROVIDERS
	Providers Providers `json:"providers"`

	// Contracts maps a contract name to its per-network bindings.
	// Env: CONTRACTS
	Contracts Contracts `json:"contracts"`

	// Env: SENTRY_DSN
	SentryDSN string `json:"sentryDSN"`

	Webhook Webhook `json:"webhook"`
	Whisper Whisper `json:"whisper"`
	Owner   Owner   `json:"owner"`

	// Logstash is optional.
	// Env: LOGSTASH
	Logstash *Logstash `json:"logstash,omitempty"`

	// TxService is configured only when TX_SERVICE_ADDRESS is set.
	TxService *TxService `json:"txService,omitempty"`
}

// Logs holds logging switches.
type Logs struct {
	Whisper WhisperLogs `json:"whisper"`
	// Env: LOG_LEVEL
	Level string `json:"level,omitempty"`
}

// WhisperLogs toggles verbose logging of the messaging layer.
type WhisperLogs struct {
	// Env: LOG_WHISPER_PINGS
	Pings bool `json:"pings"`
	// Env: LOG_WHISPER_SQL
	SQL bool `json:"sql"`
}

// Webhook holds the credentials used for response webhooks.
type Webhook struct {
	// Env: WEBHOOK_KEY
	Key string `json:"key"`
	// Env: WEBHOOK_HOST
	Address string `json:"address"`
}

// Whisper holds the messaging layer settings.
type Whisper struct {
	// Env: WHISPER_PROVIDER
	Provider string `json:"provider"`
	// Env: WHISPER_PASSWORD
	Password string `json:"password"`
	// Env: WHISPER_TOPIC_PREFIX
	TopicPrefix string `json:"topicPrefix"`
	// PollInterval is expressed in milliseconds and defaults to 5000.
	// Env: WHISPER_POLL_INTERVAL
	PollInterval int64 `json:"pollInterval"`

	Ping Ping `json:"ping"`
}

// Ping configures heartbeat monitoring of the messaging layer.
// Interval and AlertInterval are PostgreSQL interval literals.
type Ping struct {
	// Env: WHISPER_PING_ENABLED
	Enabled bool `json:"enabled"`
	// Env: WHISPER_PING_INTERVAL
	Interval string `json:"interval"`
	// Env: WHISPER_PING_ALERT_INTERVAL
	AlertInterval string `json:"alertInterval"`
	// Password is required only when Enabled is true.
	// Env: WHISPER_PING_PASSWORD
	Password string `json:"password"`
}

// Owner is the signing identity of the process.
type Owner struct {
	// Env: PRIMARY_ETH_ADDRESS
	Address string `json:"address"`
	// Env: PRIMARY_ETH_PRIVKEY
	Key HexBytes `json:"key"`
}

// Logstash configures optional log shipping.
type Logstash struct {
	Host     string `json:"host"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// TxService configures the external transaction service.
type TxService struct {
	// Env: TX_SERVICE_ADDRESS
	Address string `json:"address"`
	// Env: TX_SERVICE_KEY
	Key string `json:"key"`
	// Env: TX_SERVICE_KEY_SHA256
	WebhookKeySHA256 string `json:"webhookKeySha"`
}
