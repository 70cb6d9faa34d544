package utils

import (
	"regexp"
	"strings"
)

// Field — пара значение/сообщение для проверки на пустоту.
type Field struct {
	Value   string
	Message string
}

// ValidateFields собирает сообщения по всем пустым полям.
func ValidateFields(fields []Field) []string {
	var errs []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			errs = append(errs, f.Message)
		}
	}
	return errs
}

var emailRe = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,}$`)

// IsValidEmail проверяет форму адреса (как в схеме PendingUser).
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
