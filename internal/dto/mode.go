package dto

// CreateModeRequest carries the payload for creating or updating a delivery mode.
type CreateModeRequest struct {
	Name string `json:"name" binding:"required"`
}
