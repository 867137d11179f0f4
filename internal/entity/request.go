package entity

import (
	"time"

	"github.com/google/uuid"
)

// Upper bounds for request parameters, enforced before any row is written.
const (
	MaxDimension = 2048
	MaxNumImages = 8
)

type Request struct {
	ID uuid.UUID `json:"id"`

	Prompt    string `json:"prompt"`
	Model     string `json:"model"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	NumImages int    `json:"num_images"`

	Status Status `json:"status"` // pending, processing, completed, failed

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
