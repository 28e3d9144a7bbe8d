package models

// InternshipStatus defines the lifecycle state of an internship
type InternshipStatus string

const (
	InternshipActive    InternshipStatus = "Active"
	InternshipCompleted InternshipStatus = "Completed"
	InternshipUpcoming  InternshipStatus = "Upcoming"
)

// Internship defines an internship offering
type Internship struct {
	ID          int64            `json:"id" example:"1"` // Assigned by the store on creation
	Title       string           `json:"title" example:"Web Application Development"`
	Description string           `json:"description" example:"Develop a full-stack web application."`
	Duration    string           `json:"duration" example:"3 months"` // Free text
	StartDate   string           `json:"startDate" example:"2023-09-01"`
	EndDate     string           `json:"endDate" example:"2023-12-01"`
	MaxStudents int              `json:"maxStudents" example:"10"` // Capacity, enforced by the service layer
	Guide       string           `json:"guide" example:"Dr. Srinivas Reddy"`
	Skills      []string         `json:"skills"`
	Status      InternshipStatus `json:"status" example:"Active"` // Forced to Active on creation
}
