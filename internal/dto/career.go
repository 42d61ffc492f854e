package dto

// CreateCareerRequest carries the payload for creating or updating a career.
// FacultyID must reference an existing faculty.
type CreateCareerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Code      *string `json:"code,omitempty"`
	FacultyID string  `json:"facultyId" binding:"required,uuid"`
}
