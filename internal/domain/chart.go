package domain

import (
	"time"

	"github.com/google/uuid"
)

type Chart struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	CoverHash *string   `json:"cover_hash,omitempty"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
