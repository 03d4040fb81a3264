package contact

import (
	"regexp"
	"strings"
)

// Message is one contact-form submission. Phone is optional.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Form field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateField checks a single field and returns an empty string when valid.
func ValidateField(field, value string) string {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return "Name is required"
		}
	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(strings.TrimSpace(value)) {
			return "Please enter a valid email address"
		}
	case FieldSubject:
		if strings.TrimSpace(value) == "" {
			return "Subject is required"
		}
	case FieldMessage:
		if len(strings.TrimSpace(value)) < 10 {
			return "Message must be at least 10 characters"
		}
	}
	// Phone and unknown fields are unvalidated.
	return ""
}

// Validate checks every required field and returns a map of field errors,
// empty when the message is valid.
func Validate(msg Message) map[string]string {
	errs := make(map[string]string)
	for field, value := range map[string]string{
		FieldName:    msg.Name,
		FieldEmail:   msg.Email,
		FieldSubject: msg.Subject,
		FieldMessage: msg.Message,
	} {
		if e := ValidateField(field, value); e != "" {
			errs[field] = e
		}
	}
	return errs
}
