package utils

import (
	"time"

	"github.com/sistema-matriculas/app-enrollment/internal/models"
)

// birthDateLayout is the wire format of the form's date field
const birthDateLayout = "2006-01-02"

// ParseBirthDate parses a form birth date (YYYY-MM-DD)
func ParseBirthDate(birthDate string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return time.Time{}, models.ErrInvalidBirthDate
	}
	return t, nil
}

// AgeClassificationAt classifies a birth date as ADULT or MINOR relative
// to today: integer age in whole years, decremented when the birth
// month/day has not yet occurred this year. The boundary is inclusive on
// the day itself — someone turning 18 today is an adult.
func AgeClassificationAt(birthDate string, today time.Time) (models.AgeClass, error) {
	birth, err := ParseBirthDate(birthDate)
	if err != nil {
		return "", err
	}

	age := today.Year() - birth.Year()
	monthDifference := int(today.Month()) - int(birth.Month())
	if monthDifference < 0 || (monthDifference == 0 && today.Day() < birth.Day()) {
		age--
	}

	if age >= 18 {
		return models.AgeClassAdult, nil
	}
	return models.AgeClassMinor, nil
}

// AgeClassification classifies a birth date relative to the current date
func AgeClassification(birthDate string) (models.AgeClass, error) {
	return AgeClassificationAt(birthDate, time.Now())
}
