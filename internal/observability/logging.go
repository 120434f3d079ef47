package observability

import (
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging
func MaskCPF(cpf string) string {
	if len(cpf) != 11 {
		return "***.***.***-**"
	}
	return cpf[:3] + ".***" + "." + cpf[6:9] + "-**"
}

// MaskSensitiveData masks personal fields of a submission in a map
// destined for logs
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{
		"studentCpf", "motherCpf", "fatherCpf",
		"studentRg", "motherRg", "fatherRg",
		"studentPhone", "motherPhone", "fatherPhone",
		"studentEmail", "motherEmail", "fatherEmail",
		"birthDate",
	}
	masked := make(map[string]interface{})

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
