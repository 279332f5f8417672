package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-client/internal/logger"
)

type cookieRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCookieRepository returns the SQLite [CookieRepository].
func NewCookieRepository(db *DB, logger *logger.Logger) CookieRepository {
	return &cookieRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cookieRepository) GetHost(ctx context.Context, host string) ([]byte, bool, error) {
	query, args, err := buildSelectCookieHostQuery(host)
	if err != nil {
		return nil, false, err
	}

	var payload string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "cookieRepository.GetHost").
			Str("host", host).
			Msg("failed to query cookie host")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(payload), true, nil
}

func (r *cookieRepository) ListHosts(ctx context.Context) ([]string, error) {
	query, args, err := buildSelectCookieHostsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cookieRepository.ListHosts").
			Msg("failed to query cookie hosts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var hosts []string
	for rows.Next() {
		var host string
		if err := rows.Scan(&host); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		hosts = append(hosts, host)
	}

	if err := rows.Err(); err != nil {
		r.logger.Err(err).
			Str("func", "cookieRepository.ListHosts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return hosts, nil
}

func (r *cookieRepository) PutHost(ctx context.Context, host string, payload []byte) error {
	query, args, err := buildUpsertCookieHostQuery(host, payload)
	if err != nil {
		return err
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "cookieRepository.PutHost").
			Str("host", host).
			Msg("failed to upsert cookie host")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *cookieRepository) DeleteHosts(ctx context.Context, hosts ...string) error {
	query, args, err := buildDeleteCookieHostsQuery(hosts...)
	if err != nil {
		return err
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "cookieRepository.DeleteHosts").
			Strs("hosts", hosts).
			Msg("failed to delete cookie hosts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
