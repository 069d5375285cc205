package model

import (
	"time"
)

type Message struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	Sentiment string    `db:"sentiment" json:"sentiment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type MessagePreviewList []MessagePreview

// MessagePreview is a message joined with its author's nickname for listing.
type MessagePreview struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	Sentiment string    `db:"sentiment"`
	Nickname  string    `db:"nickname"`
	CreatedAt time.Time `db:"created_at"`
}
