package dto

// CreateRequest is the payload for registering a new image generation
// request. Bounds match entity.MaxDimension and entity.MaxNumImages.
type CreateRequest struct {
	Prompt    string `json:"prompt" validate:"required,notblank"`
	Model     string `json:"model" validate:"required"`
	Width     int    `json:"width" validate:"required,gt=0,lte=2048"`
	Height    int    `json:"height" validate:"required,gt=0,lte=2048"`
	NumImages int    `json:"num_images" validate:"required,gte=1,lte=8"`
}
