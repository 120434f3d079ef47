package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatContactPhone pretty-prints a responsible's phone number for the
// dashboard contact column, in Brazilian national format. The raw value is
// returned unchanged when it cannot be parsed as a valid number, so the
// sentinel and malformed records pass through untouched.
func FormatContactPhone(phone string) string {
	cleanPhone := strings.TrimSpace(phone)
	if cleanPhone == "" {
		return phone
	}

	if !strings.HasPrefix(cleanPhone, "+") {
		if strings.HasPrefix(cleanPhone, "55") && len(OnlyDigits(cleanPhone)) > 11 {
			cleanPhone = "+" + cleanPhone
		} else {
			cleanPhone = "+55" + cleanPhone
		}
	}

	num, err := phonenumbers.Parse(cleanPhone, "")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}

	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}
