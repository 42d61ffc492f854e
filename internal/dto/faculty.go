package dto

// CreateFacultyRequest carries the payload for creating or updating a faculty.
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required"`
}
