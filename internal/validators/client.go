package validators

import (
	"regexp"
	"strings"
)

var (
	dniRe   = regexp.MustCompile(`^\d{8}$`)
	phoneRe = regexp.MustCompile(`^9\d{8}$`)
)

// ======================================================
// VALIDACIONES DE CLIENTE
// ======================================================

func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "El nombre es requerido."
	}
	if len([]rune(trimmed)) < 2 {
		return "El nombre debe tener al menos 2 caracteres."
	}
	return ""
}

func ValidateDNI(dni string) string {
	if strings.TrimSpace(dni) == "" {
		return "El DNI es requerido."
	}
	if !dniRe.MatchString(dni) {
		return "El DNI debe tener exactamente 8 dígitos."
	}
	return ""
}

// El teléfono es opcional: vacío pasa, presente debe ser 9 dígitos
// comenzando con 9.
func ValidatePhone(phone string) string {
	if phone == "" {
		return ""
	}
	if !phoneRe.MatchString(phone) {
		return "El teléfono debe comenzar con 9 y tener 9 dígitos."
	}
	return ""
}

// ClientErrors corre las tres validaciones de forma independiente y
// devuelve un mensaje por campo inválido.
func ClientErrors(name, dni, phone string) []string {
	var errs []string

	if msg := ValidateName(name); msg != "" {
		errs = append(errs, msg)
	}
	if msg := ValidateDNI(dni); msg != "" {
		errs = append(errs, msg)
	}
	if msg := ValidatePhone(phone); msg != "" {
		errs = append(errs, msg)
	}

	return errs
}
