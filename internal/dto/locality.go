package dto

// CreateLocalityRequest carries the payload for creating or updating a locality.
type CreateLocalityRequest struct {
	Name string `json:"name" binding:"required"`
}
