package utils

import (
	"strings"

	"github.com/nagulan1506/real-estate-app/models"
)

// IsValidEmail is a light shape check; uniqueness is the store's job.
func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// IsValidPropertyType matches the catalog enum, case-insensitively.
func IsValidPropertyType(t string) bool {
	for _, v := range models.PropertyTypes {
		if strings.EqualFold(v, t) {
			return true
		}
	}
	return false
}
