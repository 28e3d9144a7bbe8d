package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("value", "field"))
	assert.Error(t, Required("", "field"))
	assert.Error(t, Required("   ", "field"))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("arun.kumar@svit.edu.in"))
	assert.Error(t, Email("arun.kumar"))
	assert.Error(t, Email("@svit.edu.in"))
	assert.Error(t, Email(""))
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("9876543210"))
	assert.NoError(t, Phone("98765 43210"))
	assert.Error(t, Phone("+91 9876543210"), "country code prefixes are not accepted")
	assert.Error(t, Phone("12345"))
	assert.Error(t, Phone(""))
}

func TestRegisterNumber(t *testing.T) {
	assert.NoError(t, RegisterNumber("SVIT2023001"))
	assert.Error(t, RegisterNumber("svit2023001"))
	assert.Error(t, RegisterNumber("2023001"))
	assert.Error(t, RegisterNumber("SVIT23"))
	assert.Error(t, RegisterNumber(""))
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("2023-09-15", "date"))
	assert.Error(t, Date("15-09-2023", "date"))
	assert.Error(t, Date("2023-13-01", "date"))
	assert.Error(t, Date("", "date"))
}

func TestPositiveInt(t *testing.T) {
	assert.NoError(t, PositiveInt(1, 1, "year"))
	assert.NoError(t, PositiveInt(10, 1, "maxStudents"))
	assert.Error(t, PositiveInt(0, 1, "year"))
	assert.Error(t, PositiveInt(-3, 1, "year"))
}
