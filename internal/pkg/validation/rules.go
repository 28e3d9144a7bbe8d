// Package validation holds the field rules the service layer applies before
// touching the datastore. The store itself never validates; these rules are
// the caller half of the two-layer contract.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation rule patterns
var (
	// Loose email shape, local@domain.tld
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// Indian mobile number, 10 digits starting 6-9
	PhonePattern = `^[6-9]\d{9}$`

	// College register number, e.g. SVIT2023001
	RegisterNumberPattern = `^[A-Z]{2,6}\d{7}$`

	// Calendar dates use YYYY-MM-DD
	DateLayout = "2006-01-02"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email          *regexp.Regexp
	Phone          *regexp.Regexp
	RegisterNumber *regexp.Regexp
}{
	Email:          regexp.MustCompile(EmailPattern),
	Phone:          regexp.MustCompile(PhonePattern),
	RegisterNumber: regexp.MustCompile(RegisterNumberPattern),
}

// Required checks that a string field is non-blank
func Required(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// Email checks email shape
func Email(email string) error {
	if err := Required(email, "email"); err != nil {
		return err
	}
	if !CompiledPatterns.Email.MatchString(email) {
		return fmt.Errorf("email %q is not a valid email address", email)
	}
	return nil
}

// Phone checks a 10-digit phone number, ignoring separators
func Phone(phone string) error {
	if err := Required(phone, "phone"); err != nil {
		return err
	}
	digits := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	if !CompiledPatterns.Phone.MatchString(digits) {
		return fmt.Errorf("phone %q is not a valid 10-digit phone number", phone)
	}
	return nil
}

// RegisterNumber checks the college register number format
func RegisterNumber(value string) error {
	if err := Required(value, "registerNumber"); err != nil {
		return err
	}
	if !CompiledPatterns.RegisterNumber.MatchString(value) {
		return fmt.Errorf("registerNumber %q does not match the expected format", value)
	}
	return nil
}

// Date checks the YYYY-MM-DD date format
func Date(value, fieldName string) error {
	if err := Required(value, fieldName); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%s %q is not a valid date (expected YYYY-MM-DD)", fieldName, value)
	}
	return nil
}

// PositiveInt checks that a numeric field is at least min
func PositiveInt(value int, min int, fieldName string) error {
	if value < min {
		return fmt.Errorf("%s must be at least %d", fieldName, min)
	}
	return nil
}
