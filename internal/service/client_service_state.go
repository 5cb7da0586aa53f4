package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

// Helpers over the settings repository. Reads fall back to the registry
// default when the key has never been stored; values come back as the loose
// types encoding/json produces (float64 for numbers).

func settingValue(ctx context.Context, settings store.SettingsRepository, key string) (any, error) {
	rec, err := settings.Get(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		if def, ok := models.StateKeys[key]; ok {
			return def.Default, nil
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func boolSetting(ctx context.Context, settings store.SettingsRepository, key string) (bool, error) {
	value, err := settingValue(ctx, settings, key)
	if err != nil {
		return false, err
	}
	b, ok := value.(bool)
	if !ok {
		if def, registered := models.StateKeys[key]; registered {
			b, _ = def.Default.(bool)
		}
	}
	return b, nil
}

func int64Setting(ctx context.Context, settings store.SettingsRepository, key string) (int64, error) {
	value, err := settingValue(ctx, settings, key)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, nil
	}
}

func stringSetting(ctx context.Context, settings store.SettingsRepository, key string) (string, error) {
	value, err := settingValue(ctx, settings, key)
	if err != nil {
		return "", err
	}
	s, _ := value.(string)
	return s, nil
}

func setSetting(ctx context.Context, settings store.SettingsRepository, key string, value any) error {
	return settings.Set(ctx, models.SimpleStateRecord{Key: key, Value: value})
}

// stateToken returns the server modification token last stored for key, or
// "" when the key has never been confirmed by the server.
func stateToken(ctx context.Context, settings store.SettingsRepository, key string) string {
	rec, err := settings.Get(ctx, key)
	if err != nil {
		return ""
	}
	return rec.LastModified
}

// saveStateToken stamps a new server modification token on key, preserving
// the stored value. Array keys keep a value-less record whose only purpose is
// carrying the token.
func saveStateToken(ctx context.Context, settings store.SettingsRepository, key, token string) error {
	rec, err := settings.Get(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		rec = models.SimpleStateRecord{Key: key}
	} else if err != nil {
		return err
	}
	rec.LastModified = token
	return settings.Set(ctx, rec)
}
