package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigits = regexp.MustCompile(`\D`)

	// Local part: optional run of permitted characters ending in a
	// non-dot character, then a domain of one or more labels and a
	// 2+ letter top-level segment. The leading-dot and consecutive-dot
	// rejections live in ValidateEmail since RE2 has no lookahead.
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9_'+\-.]*[A-Z0-9_+-]@([A-Z0-9][A-Z0-9\-]*\.)+[A-Z]{2,}$`)
)

// OnlyDigits strips every non-digit character from s
func OnlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidatePhone accepts phone numbers with exactly 10 or 11 digits
// (landline or mobile, with area code); formatting punctuation is ignored.
func ValidatePhone(phone string) bool {
	n := len(OnlyDigits(phone))
	return n == 10 || n == 11
}

// ValidateCEP accepts Brazilian postal codes with exactly 8 digits;
// formatting punctuation is ignored.
func ValidateCEP(cep string) bool {
	return len(OnlyDigits(cep)) == 8
}

// ValidateEmail accepts local-part@domain addresses, case-insensitive,
// requiring at least one domain label and a 2+ letter top-level segment.
// A local part starting with a dot or containing consecutive dots is
// rejected.
func ValidateEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return false
	}
	local := email[:at]
	if strings.HasPrefix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// FieldError returns the message recorded for field, or ""
func (vr *ValidationResult) FieldError(field string) string {
	for _, e := range vr.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}
