// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteEnvironment() *models.Environment {
	return &models.Environment{
		AppID:         "remote",
		PipelineStage: "canary",
		Logs:          models.Logs{Whisper: models.WhisperLogs{SQL: true}},
		Whisper: models.Whisper{
			PollInterval: 9000,
			Ping:         models.Ping{Enabled: true, Password: "remote-ping"},
		},
	}
}

func localResolution(t *testing.T, vars map[string]string) *Resolution {
	t.Helper()
	_, res, err := ResolveEnvironment(NewSnapshot(vars), logger.Nop())
	require.NoError(t, err)
	return res
}

func TestApplyLocalOverrides_RequiredFieldsKeepRemote(t *testing.T) {
	got := ApplyLocalOverrides(remoteEnvironment(), localResolution(t, nil))

	assert.Equal(t, "remote", got.AppID)
	assert.Equal(t, "remote-ping", got.Whisper.Ping.Password)
}

func TestApplyLocalOverrides_DefaultsWin(t *testing.T) {
	got := ApplyLocalOverrides(remoteEnvironment(), localResolution(t, nil))

	assert.Equal(t, defaultPipelineStage, got.PipelineStage)
	assert.Equal(t, defaultPollInterval, got.Whisper.PollInterval)
	assert.False(t, got.Logs.Whisper.SQL)
	assert.False(t, got.Whisper.Ping.Enabled)
	assert.Equal(t, defaultPingInterval, got.Whisper.Ping.Interval)
}

func TestApplyLocalOverrides_SetFieldsWin(t *testing.T) {
	got := ApplyLocalOverrides(remoteEnvironment(), localResolution(t, map[string]string{
		"APP_ID":                "local",
		"PIPELINE_STAGE":        "staging",
		"WHISPER_POLL_INTERVAL": "100",
		"WHISPER_PING_ENABLED":  "true",
	}))

	assert.Equal(t, "local", got.AppID)
	assert.Equal(t, "staging", got.PipelineStage)
	assert.Equal(t, int64(100), got.Whisper.PollInterval)
	assert.True(t, got.Whisper.Ping.Enabled)
}

func TestApplyLocalOverrides_AbsentResetsRemote(t *testing.T) {
	remote := remoteEnvironment()
	remote.Logs.Level = "warn"
	remote.Logstash = &models.Logstash{Host: "logs.remote"}
	remote.TxService = &models.TxService{Address: "https://tx.remote", Key: "k", WebhookKeySHA256: "h"}

	got := ApplyLocalOverrides(remote, localResolution(t, nil))

	assert.Empty(t, got.Logs.Level)
	assert.Nil(t, got.Logstash)
	assert.Nil(t, got.TxService)
}

func TestApplyLocalOverrides_OpenGateReplacesTxService(t *testing.T) {
	remote := remoteEnvironment()
	remote.TxService = &models.TxService{Address: "https://tx.remote", Key: "remote-key", WebhookKeySHA256: "remote-hash"}

	got := ApplyLocalOverrides(remote, localResolution(t, map[string]string{
		"TX_SERVICE_ADDRESS":    "https://tx.local",
		"TX_SERVICE_KEY_SHA256": "local-hash",
	}))

	require.NotNil(t, got.TxService)
	assert.Equal(t, "https://tx.local", got.TxService.Address)
	assert.Equal(t, "local-hash", got.TxService.WebhookKeySHA256)
	// Missing while the gate is open, so the remote key stays.
	assert.Equal(t, "remote-key", got.TxService.Key)
}

func TestApplyLocalOverrides_UnspecifiedNeverOverrides(t *testing.T) {
	// Ping enabled locally makes the ping password required; it is missing,
	// so its sentinel must leave the remote password in place.
	res := localResolution(t, map[string]string{"WHISPER_PING_ENABLED": "true"})
	v, ok := res.Value("WHISPER_PING_PASSWORD")
	require.True(t, ok)
	require.True(t, v.IsUnspecified())

	got := ApplyLocalOverrides(remoteEnvironment(), res)

	assert.Equal(t, "remote-ping", got.Whisper.Ping.Password)
}

func TestApplyLocalOverrides_EmptyCountsAsUnset(t *testing.T) {
	got := ApplyLocalOverrides(remoteEnvironment(), localResolution(t, map[string]string{"APP_ID": ""}))

	assert.Equal(t, "remote", got.AppID)
}
