package utils

import (
	"testing"

	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatContactPhone(t *testing.T) {
	// Valid Brazilian mobile: formatted nationally, digits preserved
	formatted := FormatContactPhone("81999386788")
	assert.Equal(t, "81999386788", OnlyDigits(formatted))
	assert.NotEqual(t, "81999386788", formatted, "expected national formatting punctuation")

	// Already carrying the country code
	formatted = FormatContactPhone("+5581999386788")
	assert.Equal(t, "81999386788", OnlyDigits(formatted))
}

func TestFormatContactPhone_Fallback(t *testing.T) {
	// Unparseable or invalid values pass through untouched
	assert.Equal(t, models.NotFound, FormatContactPhone(models.NotFound))
	assert.Equal(t, "123", FormatContactPhone("123"))
	assert.Equal(t, "", FormatContactPhone(""))
}
