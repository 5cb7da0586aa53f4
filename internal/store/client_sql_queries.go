// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSetting = `
		SELECT
			key,
			value,
			last_modified
		FROM user_settings
		WHERE key = $1;`

	upsertSetting = `
		INSERT INTO user_settings (key, value, last_modified)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value         = excluded.value,
			last_modified = excluded.last_modified;`

	deleteSetting = `
		DELETE FROM user_settings
		WHERE key = $1;`

	listArrayItems = `
		SELECT
			guid,
			event_at
		FROM array_items
		WHERE collection = $1
		ORDER BY id;`

	upsertArrayItem = `
		INSERT INTO array_items (collection, guid, event_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, guid) DO UPDATE SET
			event_at = excluded.event_at;`

	deleteArrayCollection = `
		DELETE FROM array_items
		WHERE collection = $1;`

	arrayItemExists = `
		SELECT EXISTS (
			SELECT 1 FROM array_items
			WHERE collection = $1 AND guid = $2
		);`

	enqueuePendingOperation = `
		INSERT INTO pending_operations (
			type,
			key,
			value,
			guid,
			action,
			compressed,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	listPendingOperations = `
		SELECT
			id,
			type,
			key,
			value,
			guid,
			action,
			compressed,
			created_at
		FROM pending_operations
		ORDER BY id;`

	countPendingOperations = `
		SELECT COUNT(*) FROM pending_operations;`

	upsertFeedItem = `
		INSERT INTO feed_items (
			guid,
			title,
			link,
			description,
			image,
			source,
			published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (guid) DO UPDATE SET
			title        = excluded.title,
			link         = excluded.link,
			description  = excluded.description,
			image        = excluded.image,
			source       = excluded.source,
			published_at = excluded.published_at;`

	getFeedItem = `
		SELECT
			guid,
			title,
			link,
			description,
			image,
			source,
			published_at
		FROM feed_items
		WHERE guid = $1;`

	listAllFeedItems = `
		SELECT
			guid,
			title,
			link,
			description,
			image,
			source,
			published_at
		FROM feed_items
		ORDER BY published_at DESC;`

	listAllFeedGUIDs = `
		SELECT guid FROM feed_items;`

	latestFeedTimestamp = `
		SELECT COALESCE(MAX(published_at), 0) FROM feed_items;`
)
