package dto

// CreateSemesterRequest carries the payload for creating or updating a
// semester. The (period, year) pair is the natural key.
type CreateSemesterRequest struct {
	Period string `json:"period" binding:"required"`
	Year   string `json:"year" binding:"required"`
}
