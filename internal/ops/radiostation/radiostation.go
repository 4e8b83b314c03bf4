// Package radiostation manages internet radio station entries. Stations are
// global, not per user, and unrelated to the catalog hierarchy.
package radiostation

import "time"

type RadioStation struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	StreamURL     string     `json:"stream_url"`
	HomePageURL   *string    `json:"home_page_url"`
	IsLocked      bool       `json:"is_locked"`
	SortOrder     int        `json:"sort_order"`
	APIKey        string     `json:"api_key"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `json:"tags"`
	Notes         *string    `json:"notes"`
	Description   *string    `json:"description"`
}

const (
	FieldName        = "name"
	FieldStreamURL   = "streamurl"
	FieldHomePageURL = "homepageurl"
)
