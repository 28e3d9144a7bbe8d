package dto

import "github.com/svit/internhub/internal/app/models"

// CreateStudentRequest carries the fields for a new student record.
// The id and progress sequence are assigned by the store.
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required"`
	RegisterNumber string `json:"registerNumber" binding:"required"`
	Branch         string `json:"branch" binding:"required"`
	Year           int    `json:"year" binding:"required,min=1,max=5"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
}

// UpdateStudentRequest carries a full replacement record (merge happens at
// the caller; the store replaces whole records).
type UpdateStudentRequest struct {
	Name           string `json:"name" binding:"required"`
	RegisterNumber string `json:"registerNumber" binding:"required"`
	Branch         string `json:"branch" binding:"required"`
	Year           int    `json:"year" binding:"required,min=1,max=5"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
}

// AddProgressRequest appends one progress entry to a student
type AddProgressRequest struct {
	Date    string                `json:"date" binding:"required"`
	Task    string                `json:"task" binding:"required"`
	Status  models.ProgressStatus `json:"status" binding:"required,oneof='In Progress' Completed 'On Hold' Delayed"`
	Remarks string                `json:"remarks"`
}

// AssignInternshipRequest sets or clears a student's internship; null unassigns
type AssignInternshipRequest struct {
	InternshipID *int64 `json:"internshipId"`
}
