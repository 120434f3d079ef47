package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11144477735", OnlyDigits("111.444.777-35"))
	assert.Equal(t, "81999386788", OnlyDigits("(81) 9-9938-6788"))
	assert.Equal(t, "50670420", OnlyDigits("50670-420"))
	assert.Equal(t, "", OnlyDigits("abc"))
	assert.Equal(t, "", OnlyDigits(""))
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"Mobile with area code", "81999386788", true},
		{"Landline with area code", "8133445566", true},
		{"Formatted mobile", "(81) 9-9938-6788", true},
		{"Formatted landline", "(81) 3344-5566", true},
		{"Too short", "999386788", false},
		{"Too long", "558199938678899", false},
		{"Empty", "", false},
		{"Letters only", "telefone", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePhone(tt.phone))
		})
	}
}

func TestValidateCEP(t *testing.T) {
	tests := []struct {
		name  string
		cep   string
		valid bool
	}{
		{"Plain", "50670420", true},
		{"With dash", "50670-420", true},
		{"With dots and spaces", " 50.670-420 ", true},
		{"Seven digits", "5067042", false},
		{"Nine digits", "506704200", false},
		{"Empty", "", false},
		{"Letters", "cep", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCEP(tt.cep))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"Simple", "nome@email.com", true},
		{"Uppercase is accepted", "NOME@EMAIL.COM", true},
		{"Subdomain", "aluno@escola.edu.br", true},
		{"Plus and underscore", "a_b+c@email.com", true},
		{"Dots inside local part", "nome.sobrenome@email.com", true},
		{"Two letter TLD", "a@b.co", true},
		{"Leading dot in local part", ".nome@email.com", false},
		{"Consecutive dots in local part", "nome..sobrenome@email.com", false},
		{"Missing TLD dot", "nome@email", false},
		{"One letter TLD", "nome@email.c", false},
		{"Numeric TLD", "nome@email.123", false},
		{"Domain label starting with dash", "nome@-email.com", false},
		{"Missing local part", "@email.com", false},
		{"Missing domain", "nome@", false},
		{"No at sign", "nome.email.com", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateEmail(tt.email))
		})
	}
}

func TestValidationResult(t *testing.T) {
	result := NewValidationResult()
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)

	result.AddError("studentCpf", "Digite um CPF válido")
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, "Digite um CPF válido", result.FieldError("studentCpf"))
	assert.Equal(t, "", result.FieldError("studentRg"))
}
