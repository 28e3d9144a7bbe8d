package dto

import (
	"time"

	"github.com/svit/internhub/internal/pkg/listquery"
)

// APIResponse is the standard success envelope
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// ListResponse wraps one page of a collection listing
type ListResponse struct {
	Items      interface{}        `json:"items"`
	Pagination listquery.PageInfo `json:"pagination"`
}

// SuccessResponse represents a bare confirmation message
type SuccessResponse struct {
	Message string `json:"message"`
}
