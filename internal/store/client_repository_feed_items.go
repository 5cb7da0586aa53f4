package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/models"
)

type feedItemRepository struct {
	*DB
	logger *logger.Logger
}

func NewFeedItemRepository(db *DB, logger *logger.Logger) FeedItemRepository {
	return &feedItemRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *feedItemRepository) Upsert(ctx context.Context, items ...models.FeedItem) error {
	log := logger.FromContext(ctx)

	for _, item := range items {
		_, err := f.DB.ExecContext(ctx, upsertFeedItem,
			item.GUID,
			item.Title,
			item.Link,
			item.Description,
			item.Image,
			item.Source,
			item.Timestamp,
		)
		if err != nil {
			log.Err(err).
				Str("func", "feedItemRepository.Upsert").
				Str("guid", item.GUID).
				Msg("failed to execute upsert for feed item")
			return fmt.Errorf("failed to save feed item (guid=%s): %w", item.GUID, err)
		}
	}

	return nil
}

func (f *feedItemRepository) Get(ctx context.Context, guid string) (models.FeedItem, error) {
	log := logger.FromContext(ctx)

	var item models.FeedItem
	row := f.DB.QueryRowContext(ctx, getFeedItem, guid)
	scanErr := row.Scan(
		&item.GUID,
		&item.Title,
		&item.Link,
		&item.Description,
		&item.Image,
		&item.Source,
		&item.Timestamp,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.FeedItem{}, ErrFeedItemNotFound
		}
		log.Err(scanErr).
			Str("func", "feedItemRepository.Get").
			Str("guid", guid).
			Msg("failed to scan feed item row")
		return models.FeedItem{}, errors.Join(ErrScanningRow, scanErr)
	}

	return item, nil
}

func (f *feedItemRepository) ListByGUIDs(ctx context.Context, guids []string) ([]models.FeedItem, error) {
	log := logger.FromContext(ctx)

	if len(guids) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("guid", "title", "link", "description", "image", "source", "published_at").
		From("feed_items").
		Where(sq.Eq{"guid": guids}).
		OrderBy("published_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "feedItemRepository.ListByGUIDs").
			Msg("failed to build select query for feed items")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	return f.queryItems(ctx, "feedItemRepository.ListByGUIDs", query, args...)
}

func (f *feedItemRepository) ListAll(ctx context.Context) ([]models.FeedItem, error) {
	return f.queryItems(ctx, "feedItemRepository.ListAll", listAllFeedItems)
}

func (f *feedItemRepository) AllGUIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, listAllFeedGUIDs)
	if err != nil {
		log.Err(err).
			Str("func", "feedItemRepository.AllGUIDs").
			Msg("failed to execute query for listing feed guids")
		return nil, fmt.Errorf("failed to query feed guids: %w", err)
	}
	defer rows.Close()

	var guids []string

	for rows.Next() {
		var guid string
		if scanErr := rows.Scan(&guid); scanErr != nil {
			log.Err(scanErr).
				Str("func", "feedItemRepository.AllGUIDs").
				Msg("failed to scan feed guid row")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}
		guids = append(guids, guid)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "feedItemRepository.AllGUIDs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating feed guid rows: %w", rowsErr)
	}

	return guids, nil
}

func (f *feedItemRepository) MissingGUIDs(ctx context.Context, guids []string) ([]string, error) {
	log := logger.FromContext(ctx)

	if len(guids) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("guid").
		From("feed_items").
		Where(sq.Eq{"guid": guids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "feedItemRepository.MissingGUIDs").
			Msg("failed to build select query for feed guids")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "feedItemRepository.MissingGUIDs").
			Msg("failed to execute query for present feed guids")
		return nil, fmt.Errorf("failed to query present feed guids: %w", err)
	}
	defer rows.Close()

	present := make(map[string]struct{}, len(guids))
	for rows.Next() {
		var guid string
		if scanErr := rows.Scan(&guid); scanErr != nil {
			log.Err(scanErr).
				Str("func", "feedItemRepository.MissingGUIDs").
				Msg("failed to scan feed guid row")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}
		present[guid] = struct{}{}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "feedItemRepository.MissingGUIDs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating feed guid rows: %w", rowsErr)
	}

	var missing []string
	for _, guid := range guids {
		if _, ok := present[guid]; !ok {
			missing = append(missing, guid)
		}
	}

	return missing, nil
}

func (f *feedItemRepository) LatestTimestamp(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var ts int64
	row := f.DB.QueryRowContext(ctx, latestFeedTimestamp)
	if scanErr := row.Scan(&ts); scanErr != nil {
		log.Err(scanErr).
			Str("func", "feedItemRepository.LatestTimestamp").
			Msg("failed to scan latest timestamp row")
		return 0, errors.Join(ErrScanningRow, scanErr)
	}

	return ts, nil
}

func (f *feedItemRepository) DeleteByGUIDs(ctx context.Context, guids ...string) error {
	log := logger.FromContext(ctx)

	if len(guids) == 0 {
		return nil
	}

	query, args, err := sq.Delete("feed_items").
		Where(sq.Eq{"guid": guids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "feedItemRepository.DeleteByGUIDs").
			Msg("failed to build delete query for feed items")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = f.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "feedItemRepository.DeleteByGUIDs").
			Msg("failed to execute delete for feed items")
		return fmt.Errorf("failed to delete feed items: %w", err)
	}

	return nil
}

func (f *feedItemRepository) queryItems(ctx context.Context, caller, query string, args ...any) ([]models.FeedItem, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for feed items")
		return nil, fmt.Errorf("failed to query feed items: %w", err)
	}
	defer rows.Close()

	var items []models.FeedItem

	for rows.Next() {
		var item models.FeedItem

		scanErr := rows.Scan(
			&item.GUID,
			&item.Title,
			&item.Link,
			&item.Description,
			&item.Image,
			&item.Source,
			&item.Timestamp,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan feed item row")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating feed item rows: %w", rowsErr)
	}

	return items, nil
}
