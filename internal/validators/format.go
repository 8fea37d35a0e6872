package validators

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var frenchPhone = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// NormalizePhone drops every whitespace character.
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

// IsFrenchPhone accepts 0612345678, +33 6 12 34 56 78, 0033612345678, 06.12.34.56.78 ...
func IsFrenchPhone(phone string) bool {
	return frenchPhone.MatchString(NormalizePhone(phone))
}

func IsEmail(email string) bool {
	return instance().Var(strings.TrimSpace(email), "required,email") == nil
}
