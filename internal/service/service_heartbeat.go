// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/store"
	"github.com/MKhiriev/go-attestation-kit/models"
)

type heartbeatService struct {
	pings store.PingRepository
	env   EnvironmentProvider

	logger *logger.Logger
}

func NewHeartbeatService(pings store.PingRepository, env EnvironmentProvider, logger *logger.Logger) HeartbeatService {
	return &heartbeatService{
		pings:  pings,
		env:    env,
		logger: logger,
	}
}

func (s *heartbeatService) RecordPing(ctx context.Context, responder string) (models.WhisperPing, error) {
	env, err := s.enabledEnvironment(ctx)
	if err != nil {
		return models.WhisperPing{}, err
	}

	ping, err := s.pings.CreatePing(ctx, responder)
	if err != nil {
		return models.WhisperPing{}, fmt.Errorf("error recording ping: %w", err)
	}

	if env.Logs.Whisper.Pings {
		s.logger.Info().
			Str("ping_id", ping.ID).
			Str("responder", responder).
			Str("interval", env.Whisper.Ping.Interval).
			Msg("whisper ping recorded")
	}

	return ping, nil
}

func (s *heartbeatService) Alerting(ctx context.Context) (bool, error) {
	env, err := s.enabledEnvironment(ctx)
	if err != nil {
		return false, err
	}

	count, err := s.pings.CountPingsSince(ctx, env.Whisper.Ping.AlertInterval)
	if err != nil {
		return false, fmt.Errorf("error counting pings: %w", err)
	}

	if count == 0 {
		s.logger.Warn().
			Str("alert_interval", env.Whisper.Ping.AlertInterval).
			Msg("no whisper pings within alert interval")
		return true, nil
	}

	if env.Logs.Whisper.Pings {
		s.logger.Debug().Int64("pings", count).Str("alert_interval", env.Whisper.Ping.AlertInterval).Msg("whisper pings healthy")
	}

	return false, nil
}

func (s *heartbeatService) enabledEnvironment(ctx context.Context) (*models.Environment, error) {
	env, err := s.env.Environment(ctx)
	if err != nil {
		return nil, err
	}
	if !env.Whisper.Ping.Enabled {
		return nil, ErrHeartbeatDisabled
	}
	return env, nil
}
