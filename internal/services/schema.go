package services

import (
	"strings"
	"time"

	"github.com/sistema-matriculas/app-enrollment/internal/models"
	"github.com/sistema-matriculas/app-enrollment/internal/utils"
)

// Error messages surfaced inline on the form, kept verbatim in pt-BR
const (
	msgRequired     = "Campo obrigatório"
	msgInvalidCPF   = "Digite um CPF válido"
	msgInvalidPhone = "Digite um telefone válido"
	msgInvalidEmail = "Digite um e-mail válido"
	msgInvalidCEP   = "Digite um CEP válido"
	msgDateInPast   = "A data deve ser no passado"
)

// FieldRule is one entry of the form's validation schema: required-ness
// plus an optional format predicate with its inline message. Rules are
// applied uniformly, so the schema stays a plain data table instead of
// per-field code paths.
type FieldRule struct {
	Name     string
	Required bool
	Validate func(value string) bool
	Message  string
}

// personRules builds the rule set shared by the three people of the form.
// prefix is the field-name prefix ("student", "mother", "father"),
// fullName the person's full-name field.
func personRules(fullName, prefix string) []FieldRule {
	return []FieldRule{
		{Name: fullName, Required: true},
		{Name: prefix + "Cpf", Required: true, Validate: utils.ValidateCPF, Message: msgInvalidCPF},
		{Name: prefix + "Rg", Required: true},
		{Name: prefix + "Phone", Required: true, Validate: utils.ValidatePhone, Message: msgInvalidPhone},
		{Name: prefix + "Email", Required: true, Validate: utils.ValidateEmail, Message: msgInvalidEmail},
		{Name: prefix + "Cep", Required: true, Validate: utils.ValidateCEP, Message: msgInvalidCEP},
		{Name: prefix + "Neighborhood", Required: true},
		{Name: prefix + "City", Required: true},
		{Name: prefix + "State", Required: true},
		{Name: prefix + "Road", Required: true},
		{Name: prefix + "HouseNumber", Required: true},
	}
}

// GuardianFormSchema returns the full declarative schema of the
// enrollment form. birthDateRule rejects unparseable dates here, before
// the age classifier can ever see one, and dates in the future.
func GuardianFormSchema(today time.Time) []FieldRule {
	birthDateRule := FieldRule{
		Name:     "birthDate",
		Required: true,
		Validate: func(value string) bool {
			birth, err := utils.ParseBirthDate(value)
			if err != nil {
				return false
			}
			return !birth.After(today)
		},
		Message: msgDateInPast,
	}

	// socialName is the one optional field and carries no format rule,
	// so it has no schema entry.
	schema := []FieldRule{birthDateRule}
	schema = append(schema, personRules("fullStudentName", "student")...)
	schema = append(schema, personRules("fullMotherName", "mother")...)
	schema = append(schema, personRules("fullFatherName", "father")...)
	return schema
}

// ApplySchema validates every form field against the schema and returns
// the collected field errors. Requiredness is checked first; the format
// predicate only runs on non-blank values.
func ApplySchema(form *models.GuardianForm, schema []FieldRule) *utils.ValidationResult {
	result := utils.NewValidationResult()
	values := form.Values()

	for _, rule := range schema {
		value := values[rule.Name]
		if rule.Required && strings.TrimSpace(value) == "" {
			result.AddError(rule.Name, msgRequired)
			continue
		}
		if rule.Validate != nil && !rule.Validate(value) {
			result.AddError(rule.Name, rule.Message)
		}
	}

	return result
}
