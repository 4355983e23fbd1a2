package domain

import (
	"fmt"
	"net/mail"
)

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate requires a message body. The email is optional but must parse
// when given.
func (m ContactMessage) Validate() error {
	if m.Message == "" {
		return fmt.Errorf("message is empty")
	}

	if m.Email != "" {
		if _, err := mail.ParseAddress(m.Email); err != nil {
			return fmt.Errorf("email[%s] is not valid", m.Email)
		}
	}

	return nil
}
