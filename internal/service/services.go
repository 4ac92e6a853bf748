// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/store"
)

type Services struct {
	HeartbeatService HeartbeatService
	AccessService    AccessService
}

func NewServices(repositories *store.Repositories, env EnvironmentProvider, logger *logger.Logger) *Services {
	return &Services{
		HeartbeatService: NewHeartbeatService(repositories.PingRepository, env, logger),
		AccessService:    NewAccessService(env, logger),
	}
}
