package models

// ProgressStatus defines the state of a single progress entry
type ProgressStatus string

const (
	ProgressInProgress ProgressStatus = "In Progress"
	ProgressCompleted  ProgressStatus = "Completed"
	ProgressOnHold     ProgressStatus = "On Hold"
	ProgressDelayed    ProgressStatus = "Delayed"
)

// ProgressEntry is a single dated progress record for a student.
// Entries are append-only: the store never edits or removes them.
type ProgressEntry struct {
	Date    string         `json:"date" example:"2023-09-01"` // Calendar date (YYYY-MM-DD)
	Task    string         `json:"task" example:"Requirements Analysis"`
	Status  ProgressStatus `json:"status" example:"Completed"`
	Remarks string         `json:"remarks" example:"Good work"`
}

// Student defines a student record in the portal
type Student struct {
	ID             int64           `json:"id" example:"1"` // Assigned by the store on creation
	Name           string          `json:"name" example:"Arun Kumar"`
	RegisterNumber string          `json:"registerNumber" example:"SVIT2023001"` // College register number
	Branch         string          `json:"branch" example:"Computer Science"`
	Year           int             `json:"year" example:"3"` // Year of study
	Email          string          `json:"email" example:"arun.kumar@svit.edu.in"`
	Phone          string          `json:"phone" example:"9876543210"`
	InternshipID   *int64          `json:"internshipId"` // Assigned internship, nil when unassigned
	Progress       []ProgressEntry `json:"progress"`
}
