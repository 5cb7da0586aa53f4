package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/models"
)

type arrayRepository struct {
	*DB
	logger *logger.Logger
}

func NewArrayRepository(db *DB, logger *logger.Logger) ArrayRepository {
	return &arrayRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *arrayRepository) List(ctx context.Context, collection string) ([]models.ArrayItem, error) {
	log := logger.FromContext(ctx)

	rows, err := a.DB.QueryContext(ctx, listArrayItems, collection)
	if err != nil {
		log.Err(err).
			Str("func", "arrayRepository.List").
			Str("collection", collection).
			Msg("failed to execute query for listing array items")
		return nil, fmt.Errorf("failed to query array items (collection=%s): %w", collection, err)
	}
	defer rows.Close()

	var items []models.ArrayItem

	for rows.Next() {
		var item models.ArrayItem

		if scanErr := rows.Scan(&item.GUID, &item.EventAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "arrayRepository.List").
				Str("collection", collection).
				Msg("failed to scan array item row")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "arrayRepository.List").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating array item rows: %w", rowsErr)
	}

	return items, nil
}

func (a *arrayRepository) Add(ctx context.Context, collection string, items ...models.ArrayItem) error {
	log := logger.FromContext(ctx)

	for _, item := range items {
		if _, err := a.DB.ExecContext(ctx, upsertArrayItem, collection, item.GUID, item.EventAt); err != nil {
			log.Err(err).
				Str("func", "arrayRepository.Add").
				Str("collection", collection).
				Str("guid", item.GUID).
				Msg("failed to execute upsert for array item")
			return fmt.Errorf("failed to save array item (collection=%s, guid=%s): %w", collection, item.GUID, err)
		}
	}

	return nil
}

func (a *arrayRepository) Remove(ctx context.Context, collection string, guids ...string) error {
	log := logger.FromContext(ctx)

	if len(guids) == 0 {
		return nil
	}

	query, args, err := sq.Delete("array_items").
		Where(sq.Eq{"collection": collection, "guid": guids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "arrayRepository.Remove").
			Str("collection", collection).
			Msg("failed to build delete query for array items")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "arrayRepository.Remove").
			Str("collection", collection).
			Msg("failed to execute delete for array items")
		return fmt.Errorf("failed to delete array items (collection=%s): %w", collection, err)
	}

	return nil
}

func (a *arrayRepository) Replace(ctx context.Context, collection string, items []models.ArrayItem) error {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "arrayRepository.Replace").
			Str("collection", collection).
			Msg("failed to begin transaction")
		return errors.Join(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteArrayCollection, collection); err != nil {
		log.Err(err).
			Str("func", "arrayRepository.Replace").
			Str("collection", collection).
			Msg("failed to clear array collection")
		return fmt.Errorf("failed to clear array collection (collection=%s): %w", collection, err)
	}

	for _, item := range items {
		if _, err = tx.ExecContext(ctx, upsertArrayItem, collection, item.GUID, item.EventAt); err != nil {
			log.Err(err).
				Str("func", "arrayRepository.Replace").
				Str("collection", collection).
				Str("guid", item.GUID).
				Msg("failed to insert array item during replace")
			return fmt.Errorf("failed to insert array item (collection=%s, guid=%s): %w", collection, item.GUID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "arrayRepository.Replace").
			Str("collection", collection).
			Msg("failed to commit transaction")
		return errors.Join(ErrCommitingTransaction, err)
	}

	return nil
}

func (a *arrayRepository) Contains(ctx context.Context, collection, guid string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := a.DB.QueryRowContext(ctx, arrayItemExists, collection, guid)
	if scanErr := row.Scan(&exists); scanErr != nil {
		log.Err(scanErr).
			Str("func", "arrayRepository.Contains").
			Str("collection", collection).
			Str("guid", guid).
			Msg("failed to scan exists row")
		return false, errors.Join(ErrScanningRow, scanErr)
	}

	return exists, nil
}
