package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// ContactMessage is a contact form submission. Rows are append-only: there
// is no update or delete path, and id and created_at never change once set.
type ContactMessage struct {
	ID int64 `bun:",pk,autoincrement" json:"id"`

	Name  string `bun:",notnull" json:"name"`
	Email string `bun:",notnull" json:"email"`
	// The client-facing field is called purpose; the column keeps the
	// original topic name.
	Purpose string `bun:"topic,notnull" json:"purpose"`
	Message string `bun:",notnull" json:"message"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// ContactStore persists contact messages through bun.
type ContactStore struct {
	db *bun.DB
}

func NewContactStore(db *bun.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) Create(ctx context.Context, msg *ContactMessage) error {
	_, err := s.db.NewInsert().Model(msg).Exec(ctx)
	return err
}

// ListRecent returns the most recent submissions, newest first.
func (s *ContactStore) ListRecent(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit <= 0 {
		limit = 20
	}

	var msgs []ContactMessage
	err := s.db.NewSelect().
		Model(&msgs).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
