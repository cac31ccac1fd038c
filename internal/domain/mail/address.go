package mail

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidAddress is the local validation error for a malformed recipient.
// It is raised before any dispatch call is made.
var ErrInvalidAddress = errors.New("invalid email address")

var validate = validator.New()

// ValidateAddress checks the recipient syntactically: non-empty and shaped
// like local@domain.tld. Deliverability is not checked.
func ValidateAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ErrInvalidAddress
	}
	if err := validate.Var(addr, "email"); err != nil {
		return ErrInvalidAddress
	}
	// validator accepts local@domain without a TLD; the service contract
	// requires one.
	at := strings.LastIndex(addr, "@")
	if at < 0 || !strings.Contains(addr[at+1:], ".") {
		return ErrInvalidAddress
	}
	return nil
}
