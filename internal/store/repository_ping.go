// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/utils"
	"github.com/MKhiriev/go-attestation-kit/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

const pingsTable = "whisper_pings"

// pingRepository is the PostgreSQL-backed implementation of [PingRepository].
type pingRepository struct {
	db      *DB
	newID   func() string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewPingRepository constructs a [PingRepository] over db.
func NewPingRepository(db *DB, log *logger.Logger) PingRepository {
	log.Debug().Msg("creating ping repository")
	return &pingRepository{
		db:      db,
		newID:   utils.NewTimeOrderedID,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  log,
	}
}

// CreatePing inserts a ping with a fresh UUIDv7 id; created and updated are
// set by the database.
func (r *pingRepository) CreatePing(ctx context.Context, responder string) (models.WhisperPing, error) {
	log := r.logger.ForContext(ctx)

	query, args, err := r.builder.
		Insert(pingsTable).
		Columns("id", "responder").
		Values(r.newID(), responder).
		Suffix("RETURNING id, created, updated, responder").
		ToSql()
	if err != nil {
		return models.WhisperPing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ping models.WhisperPing
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&ping.ID, &ping.Created, &ping.Updated, &ping.Responder); err != nil {
		log.Err(err).Str("func", "*pingRepository.CreatePing").Msg("error inserting ping")
		return models.WhisperPing{}, r.classify(err)
	}

	return ping, nil
}

// CountPingsSince counts the pings created after now() - interval.
func (r *pingRepository) CountPingsSince(ctx context.Context, interval string) (int64, error) {
	log := r.logger.ForContext(ctx)

	query, args, err := r.builder.
		Select("count(*)").
		From(pingsTable).
		Where("created > now() - CAST(? AS interval)", interval).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*pingRepository.CountPingsSince").Str("interval", interval).Msg("error counting pings")
		return 0, r.classify(err)
	}

	return count, nil
}

func (r *pingRepository) classify(err error) error {
	switch postgresError(err) {
	case pgerrcode.InvalidDatetimeFormat, pgerrcode.InvalidParameterValue, pgerrcode.IntervalFieldOverflow:
		return fmt.Errorf("%w: %w", ErrInvalidInterval, err)
	}

	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
