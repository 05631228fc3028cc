package usecasecontract

import "strings"

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field error found in one input.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// IValidator validates registration input before a user is constructed.
type IValidator interface {
	ValidateRegistration(in RegisterInput) ValidationErrors
}
