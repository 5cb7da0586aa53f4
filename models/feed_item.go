package models

import "time"

// FeedItem is one sanitized feed entry as delivered by the remote feed API.
// GUIDs are lowercased on ingest and used as the sole identity everywhere.
type FeedItem struct {
	GUID        string `json:"guid"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	// Timestamp is the publication time in unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// PublishedAt returns the publication time.
func (f FeedItem) PublishedAt() time.Time {
	return time.UnixMilli(f.Timestamp)
}
