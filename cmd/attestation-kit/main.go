// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/MKhiriev/go-attestation-kit/internal/config"
	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/service"
	"github.com/MKhiriev/go-attestation-kit/internal/store"
	"github.com/MKhiriev/go-attestation-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("attestation-kit")

	flags, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	snapshot, err := config.LoadSnapshot(flags.EnvFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	provider := config.NewProvider(config.NewDispatcher(flags.Apply(snapshot), log), log)
	env, err := provider.Environment(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(env.Logs.Level); err != nil {
		log.Warn().Err(err).Msg("ignoring LOG_LEVEL")
	}

	logSummary(log, env)

	if !env.Whisper.Ping.Enabled {
		return
	}

	if err = checkHeartbeat(ctx, provider, env, log); err != nil {
		log.Fatal().Err(err).Msg("heartbeat check failed")
	}
}

// logSummary logs the resolved environment without any secret.
func logSummary(log *logger.Logger, env *models.Environment) {
	networks := slices.Sorted(maps.Keys(env.Providers))
	contracts := slices.Sorted(maps.Keys(env.Contracts))

	log.Info().
		Str("app_id", env.AppID).
		Str("node_env", env.NodeEnv).
		Str("pipeline_stage", env.PipelineStage).
		Str("source_version", env.SourceVersion).
		Any("networks", networks).
		Any("contracts", contracts).
		Str("owner", env.Owner.Address).
		Bool("heartbeat", env.Whisper.Ping.Enabled).
		Bool("logstash", env.Logstash != nil).
		Bool("tx_service", env.TxService != nil).
		Msg("environment ready")
}

func checkHeartbeat(ctx context.Context, provider *config.Provider, env *models.Environment, log *logger.Logger) error {
	db, err := store.NewConnectPostgres(ctx, env.DBURL, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	services := service.NewServices(store.NewRepositories(db, log), provider, log)

	if _, err = services.HeartbeatService.RecordPing(ctx, env.Owner.Address); err != nil && !errors.Is(err, service.ErrHeartbeatDisabled) {
		return err
	}

	alerting, err := services.HeartbeatService.Alerting(ctx)
	if err != nil {
		return err
	}
	log.Info().Bool("alerting", alerting).Str("alert_interval", env.Whisper.Ping.AlertInterval).Msg("heartbeat checked")

	return nil
}
