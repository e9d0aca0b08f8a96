package models

import (
	"time"

	"github.com/google/uuid"
)

type Warehouse struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  *string   `json:"location" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
