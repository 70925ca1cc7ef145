package dto

import (
	"strings"
	"unicode"
)

// Normalizer is implemented by request bodies that clean their input before validation
type Normalizer interface {
	Normalize()
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeCPF formats 11 bare digits as 000.000.000-00 and leaves anything else trimmed
func NormalizeCPF(cpf string) string {
	cpf = strings.TrimSpace(cpf)
	if len(cpf) != 11 || !onlyDigits(cpf) {
		return cpf
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}

// NormalizePlaca upper-cases the plate and removes the hyphen of the old format
func NormalizePlaca(placa string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(placa), "-", ""))
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
