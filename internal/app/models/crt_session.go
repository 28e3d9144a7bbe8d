package models

// CRTSession defines a campus-readiness-training session.
// RegisteredStudents holds student ids with set semantics: the store
// guarantees no duplicates and registration is idempotent.
type CRTSession struct {
	ID                 int64   `json:"id" example:"1"` // Assigned by the store on creation
	Title              string  `json:"title" example:"Resume Building Workshop"`
	Description        string  `json:"description" example:"Learn how to craft an impressive resume."`
	Date               string  `json:"date" example:"2023-09-10"`
	Time               string  `json:"time" example:"10:00 AM - 12:00 PM"`
	Venue              string  `json:"venue" example:"Seminar Hall 1"`
	Speaker            string  `json:"speaker" example:"Ms. Kavita Sharma"`
	Eligibility        string  `json:"eligibility" example:"All final year students"` // Free text
	RegisteredStudents []int64 `json:"registeredStudents"`
}
