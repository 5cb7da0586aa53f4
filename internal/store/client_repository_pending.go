package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/models"
)

type pendingOperationRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingOperationRepository(db *DB, logger *logger.Logger) PendingOperationRepository {
	return &pendingOperationRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *pendingOperationRepository) Enqueue(ctx context.Context, op models.PendingOperation) (models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	var rawValue sql.NullString
	if op.Value != nil {
		encoded, err := json.Marshal(op.Value)
		if err != nil {
			log.Err(err).
				Str("func", "pendingOperationRepository.Enqueue").
				Str("type", string(op.Type)).
				Msg("failed to encode operation value")
			return models.PendingOperation{}, fmt.Errorf("failed to encode operation value: %w", err)
		}
		rawValue = sql.NullString{String: string(encoded), Valid: true}
	}

	if op.Timestamp.IsZero() {
		op.Timestamp = time.Now().UTC()
	}

	// The key column always holds the resolved state key, also for delta
	// operations whose payload carries only a guid. ExistsForKeys relies on
	// that to find buffered deltas by their collection.
	result, err := p.DB.ExecContext(ctx, enqueuePendingOperation,
		op.Type,
		models.KeyForOperation(op),
		rawValue,
		op.GUID,
		op.Action,
		op.Compressed,
		op.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.Enqueue").
			Str("type", string(op.Type)).
			Str("key", op.Key).
			Msg("failed to execute insert for pending operation")
		return models.PendingOperation{}, fmt.Errorf("failed to enqueue operation (key=%s): %w", op.Key, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.PendingOperation{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.PendingOperation{}, ErrOperationNotEnqueued
	}

	localID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.Enqueue").
			Msg("failed to get last insert id for pending operation")
		return models.PendingOperation{}, fmt.Errorf("failed to get operation id: %w", err)
	}
	op.LocalID = localID

	return op, nil
}

func (p *pendingOperationRepository) List(ctx context.Context) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPendingOperations)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.List").
			Msg("failed to execute query for listing pending operations")
		return nil, fmt.Errorf("failed to query pending operations: %w", err)
	}
	defer rows.Close()

	var ops []models.PendingOperation

	for rows.Next() {
		op, scanErr := scanPendingOperation(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingOperationRepository.List").
				Msg("failed to scan pending operation row")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}

		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pendingOperationRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending operation rows: %w", rowsErr)
	}

	return ops, nil
}

func (p *pendingOperationRepository) Remove(ctx context.Context, ids ...int64) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Delete("pending_operations").
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.Remove").
			Msg("failed to build delete query for pending operations")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.Remove").
			Msg("failed to execute delete for pending operations")
		return fmt.Errorf("failed to delete pending operations: %w", err)
	}

	return nil
}

func (p *pendingOperationRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := p.DB.QueryRowContext(ctx, countPendingOperations)
	if scanErr := row.Scan(&count); scanErr != nil {
		log.Err(scanErr).
			Str("func", "pendingOperationRepository.Count").
			Msg("failed to scan count row")
		return 0, errors.Join(ErrScanningRow, scanErr)
	}

	return count, nil
}

func (p *pendingOperationRepository) ExistsForKeys(ctx context.Context, keys ...string) (bool, error) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return false, nil
	}

	query, args, err := sq.Select("COUNT(*)").
		From("pending_operations").
		Where(sq.Eq{"key": keys}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.ExistsForKeys").
			Msg("failed to build exists query for pending operations")
		return false, errors.Join(ErrBuildingSQLQuery, err)
	}

	var count int64
	row := p.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&count); scanErr != nil {
		log.Err(scanErr).
			Str("func", "pendingOperationRepository.ExistsForKeys").
			Msg("failed to scan exists row")
		return false, errors.Join(ErrScanningRow, scanErr)
	}

	return count > 0, nil
}

func scanPendingOperation(rows *sql.Rows) (models.PendingOperation, error) {
	var op models.PendingOperation
	var rawValue sql.NullString
	var keyColumn string
	var createdAt string

	if err := rows.Scan(
		&op.LocalID,
		&op.Type,
		&keyColumn,
		&rawValue,
		&op.GUID,
		&op.Action,
		&op.Compressed,
		&createdAt,
	); err != nil {
		return models.PendingOperation{}, err
	}

	// Delta operations address their collection through the registry, not a
	// payload key; only simpleUpdate carries the key on the wire.
	if op.Type == models.OpSimpleUpdate {
		op.Key = keyColumn
	}

	if rawValue.Valid {
		if err := json.Unmarshal([]byte(rawValue.String), &op.Value); err != nil {
			return models.PendingOperation{}, fmt.Errorf("failed to decode operation value (id=%d): %w", op.LocalID, err)
		}
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.PendingOperation{}, fmt.Errorf("failed to parse operation timestamp (id=%d): %w", op.LocalID, err)
	}
	op.Timestamp = ts

	return op, nil
}
