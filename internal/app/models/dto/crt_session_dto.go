package dto

// CreateCRTSessionRequest carries the fields for a new CRT session.
// The registration set starts empty regardless of input.
type CreateCRTSessionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Venue       string `json:"venue" binding:"required"`
	Speaker     string `json:"speaker" binding:"required"`
	Eligibility string `json:"eligibility"`
}

// UpdateCRTSessionRequest carries a full replacement record. The
// registration set is kept from the stored record, not taken from input.
type UpdateCRTSessionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Venue       string `json:"venue" binding:"required"`
	Speaker     string `json:"speaker" binding:"required"`
	Eligibility string `json:"eligibility"`
}

// RegistrationRequest registers or unregisters a student for a session
type RegistrationRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
}
