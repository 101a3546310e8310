package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("crew@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2026-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	_, ok = IsValidDate("10-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	got, ok := IsValidTimeOfDay("09:30:15")
	assert.True(t, ok)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 15, got.Second())

	got, ok = IsValidTimeOfDay("22:00")
	assert.True(t, ok)
	assert.Equal(t, 22, got.Hour())

	_, ok = IsValidTimeOfDay("25:00")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("9am")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("081234567890"))
	assert.True(t, IsValidPhoneNumber("0812-3456-7890"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("0812345678901234"))
	assert.False(t, IsValidPhoneNumber("08x234567890"))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("crew_1"))
	assert.True(t, IsValidUsername("first.last-2"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
	assert.False(t, IsValidUsername(""))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "required"},
		{Field: "wage", Message: "must be positive"},
	}

	assert.Equal(t, "username: required; wage: must be positive", errs.Error())
	assert.Equal(t, map[string]string{
		"username": "required",
		"wage":     "must be positive",
	}, errs.ToMap())
}
