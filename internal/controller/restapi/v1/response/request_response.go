package response

import (
	"time"

	"github.com/BelugaDiver/foreman/internal/entity"
)

type Request struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Model     string `json:"model"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	NumImages int    `json:"num_images"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewRequest(request *entity.Request) Request {
	return Request{
		ID:        request.ID.String(),
		Prompt:    request.Prompt,
		Model:     request.Model,
		Width:     request.Width,
		Height:    request.Height,
		NumImages: request.NumImages,
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt.Format(time.RFC3339),
		UpdatedAt: request.UpdatedAt.Format(time.RFC3339),
	}
}

func NewRequestList(requests []*entity.Request) []Request {
	out := make([]Request, 0, len(requests))

	for _, request := range requests {
		out = append(out, NewRequest(request))
	}

	return out
}
