package services

import (
	"regexp"
	"strings"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// required returns a validation error for the first blank field, in order.
func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return domain.NewValidationError(f[0], "Please fill in all required fields")
		}
	}
	return nil
}
