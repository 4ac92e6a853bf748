// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/utils"
)

type accessService struct {
	env EnvironmentProvider

	logger *logger.Logger
}

func NewAccessService(env EnvironmentProvider, logger *logger.Logger) AccessService {
	return &accessService{
		env:    env,
		logger: logger,
	}
}

func (s *accessService) VerifyAPIKey(ctx context.Context, key string) (bool, error) {
	env, err := s.env.Environment(ctx)
	if err != nil {
		return false, err
	}

	ok := utils.MatchesSHA256(key, env.APIKeySHA256)
	if !ok {
		s.logger.Debug().Msg("api key rejected")
	}
	return ok, nil
}

func (s *accessService) VerifyWebhookKey(ctx context.Context, key string) (bool, error) {
	env, err := s.env.Environment(ctx)
	if err != nil {
		return false, err
	}
	if env.TxService == nil || env.TxService.WebhookKeySHA256 == "" {
		return false, ErrWebhookKeyNotConfigured
	}

	ok := utils.MatchesSHA256(key, env.TxService.WebhookKeySHA256)
	if !ok {
		s.logger.Debug().Msg("webhook key rejected")
	}
	return ok, nil
}
