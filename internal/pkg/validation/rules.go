package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Cedula pattern - 6 to 10 digits, no separators
	CedulaPattern = `^\d{6,10}$`

	// Phone pattern - digits with optional leading plus
	PhonePattern = `^\+?\d{7,15}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Cedula *regexp.Regexp
	Phone  *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Cedula: regexp.MustCompile(CedulaPattern),
	Phone:  regexp.MustCompile(PhonePattern),
}

// IsValidCedula reports whether the value is a plausible cedula number
func IsValidCedula(value string) bool {
	return CompiledPatterns.Cedula.MatchString(value)
}

// IsValidEmail reports whether the value is a plausible mailbox
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidPhone reports whether the value is a plausible phone number
func IsValidPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}
