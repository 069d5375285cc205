package model

import (
	"time"
)

type User struct {
	ID        int64     `db:"id" json:"id"`
	Nickname  string    `db:"nickname" json:"nickname"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
