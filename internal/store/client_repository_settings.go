package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/models"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (models.SimpleStateRecord, error) {
	log := logger.FromContext(ctx)

	var record models.SimpleStateRecord
	var rawValue string

	row := s.DB.QueryRowContext(ctx, getSetting, key)
	scanErr := row.Scan(&record.Key, &rawValue, &record.LastModified)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.SimpleStateRecord{}, ErrSettingNotFound
		}
		log.Err(scanErr).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to scan setting row")
		return models.SimpleStateRecord{}, fmt.Errorf("failed to scan setting row (key=%s): %w", key, scanErr)
	}

	if err := json.Unmarshal([]byte(rawValue), &record.Value); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to decode stored setting value")
		return models.SimpleStateRecord{}, fmt.Errorf("failed to decode setting value (key=%s): %w", key, err)
	}

	return record, nil
}

func (s *settingsRepository) Set(ctx context.Context, record models.SimpleStateRecord) error {
	log := logger.FromContext(ctx)

	rawValue, err := json.Marshal(record.Value)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Set").
			Str("key", record.Key).
			Msg("failed to encode setting value")
		return fmt.Errorf("failed to encode setting value (key=%s): %w", record.Key, err)
	}

	if _, err = s.DB.ExecContext(ctx, upsertSetting, record.Key, string(rawValue), record.LastModified); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Set").
			Str("key", record.Key).
			Msg("failed to execute upsert for setting")
		return fmt.Errorf("failed to save setting (key=%s): %w", record.Key, err)
	}

	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to execute delete for setting")
		return fmt.Errorf("failed to delete setting (key=%s): %w", key, err)
	}

	return nil
}
