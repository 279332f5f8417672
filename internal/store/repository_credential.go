package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-feed-client/internal/logger"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository returns the SQLite [CredentialRepository].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) GetAll(ctx context.Context, keys []string) (map[string][]byte, error) {
	query, args, err := buildSelectCredentialsQuery(keys)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.GetAll").
			Msg("failed to query credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string][]byte, len(keys))
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (r *credentialRepository) PutAll(ctx context.Context, values map[string][]byte) error {
	// stable statement order keeps transactions predictable
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.inTx(ctx, "credentialRepository.PutAll", func(exec func(query string, args ...any) error) error {
			for _, key := range keys {
				query, args, err := buildUpsertCredentialQuery(key, values[key])
				if err != nil {
					return err
				}
				if err := exec(query, args...); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (r *credentialRepository) DeleteAll(ctx context.Context, keys []string) error {
	query, args, err := buildDeleteCredentialsQuery(keys)
	if err != nil {
		return err
	}

	return r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.inTx(ctx, "credentialRepository.DeleteAll", func(exec func(query string, args ...any) error) error {
			return exec(query, args...)
		})
	})
}

func (r *credentialRepository) inTx(ctx context.Context, fn string, body func(exec func(query string, args ...any) error) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	exec := func(query string, args ...any) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	}

	if err := body(exec); err != nil {
		r.logger.Err(err).Str("func", fn).Msg("rolling back credential transaction")
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
