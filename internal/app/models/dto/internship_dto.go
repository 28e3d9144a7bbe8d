package dto

import "github.com/svit/internhub/internal/app/models"

// CreateInternshipRequest carries the fields for a new internship.
// Status is forced to Active by the store regardless of input.
type CreateInternshipRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	MaxStudents int      `json:"maxStudents" binding:"required,min=1"`
	Guide       string   `json:"guide" binding:"required"`
	Skills      []string `json:"skills"`
}

// UpdateInternshipRequest carries a full replacement record
type UpdateInternshipRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description" binding:"required"`
	Duration    string                  `json:"duration" binding:"required"`
	StartDate   string                  `json:"startDate" binding:"required"`
	EndDate     string                  `json:"endDate" binding:"required"`
	MaxStudents int                     `json:"maxStudents" binding:"required,min=1"`
	Guide       string                  `json:"guide" binding:"required"`
	Skills      []string                `json:"skills"`
	Status      models.InternshipStatus `json:"status" binding:"required,oneof=Active Completed Upcoming"`
}

// InternshipResponse is an internship with its derived occupancy.
// Occupancy is informational; the store never enforces it against capacity.
type InternshipResponse struct {
	models.Internship
	Occupancy int `json:"occupancy"` // Count of students assigned to this internship
}
