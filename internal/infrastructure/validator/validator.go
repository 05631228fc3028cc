package validator

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

const (
	maxNameLength     = 50
	minPasswordLength = 8
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() *AppValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateRegistration runs the common field rules and then the rules of the
// requested role. Every failing field is reported.
func (av *AppValidator) ValidateRegistration(in usecasecontract.RegisterInput) usecasecontract.ValidationErrors {
	var errs usecasecontract.ValidationErrors
	errs = append(errs, av.validateName("firstName", "First name", in.FirstName)...)
	errs = append(errs, av.validateName("lastName", "Last name", in.LastName)...)
	errs = append(errs, av.validateEmail(in.Email)...)
	errs = append(errs, validatePassword(in.Password)...)

	switch in.Role {
	case entity.UserRoleStudent:
		errs = append(errs, validateStudent(in)...)
	case entity.UserRoleLecturer:
		errs = append(errs, validateLecturer(in)...)
	case entity.UserRoleAdmin:
		errs = append(errs, validateAdmin(in)...)
	default:
		errs = append(errs, usecasecontract.FieldError{
			Field:   "role",
			Message: fmt.Sprintf("`%s` is not a valid role", in.Role),
		})
	}
	return errs
}

func (av *AppValidator) validateName(field, label, value string) usecasecontract.ValidationErrors {
	if value == "" {
		return usecasecontract.ValidationErrors{{Field: field, Message: label + " is required"}}
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return usecasecontract.ValidationErrors{{
			Field:   field,
			Message: fmt.Sprintf("%s cannot exceed %d characters", label, maxNameLength),
		}}
	}
	return nil
}

func (av *AppValidator) validateEmail(email string) usecasecontract.ValidationErrors {
	if email == "" {
		return usecasecontract.ValidationErrors{{Field: "email", Message: "Email is required"}}
	}
	if err := av.validate.Var(email, "email"); err != nil {
		return usecasecontract.ValidationErrors{{Field: "email", Message: "Please fill a valid email address"}}
	}
	return nil
}

func validatePassword(password string) usecasecontract.ValidationErrors {
	if password == "" {
		return usecasecontract.ValidationErrors{{Field: "password", Message: "Password is required"}}
	}
	if len(password) < minPasswordLength {
		return usecasecontract.ValidationErrors{{
			Field:   "password",
			Message: fmt.Sprintf("Password must be at least %d characters", minPasswordLength),
		}}
	}
	return nil
}

func validateStudent(in usecasecontract.RegisterInput) usecasecontract.ValidationErrors {
	var errs usecasecontract.ValidationErrors
	if in.StudentNumber == "" {
		errs = append(errs, usecasecontract.FieldError{Field: "studentNumber", Message: "Student number is required"})
	}
	return append(errs, validatePlacement(in)...)
}

func validateLecturer(in usecasecontract.RegisterInput) usecasecontract.ValidationErrors {
	var errs usecasecontract.ValidationErrors
	if in.StaffNumber == "" {
		errs = append(errs, usecasecontract.FieldError{Field: "staffNumber", Message: "Staff number is required"})
	}
	return append(errs, validatePlacement(in)...)
}

// admins carry a staff number only; faculty and campus are ignored.
func validateAdmin(in usecasecontract.RegisterInput) usecasecontract.ValidationErrors {
	if in.StaffNumber == "" {
		return usecasecontract.ValidationErrors{{Field: "staffNumber", Message: "Staff number is required"}}
	}
	return nil
}

func validatePlacement(in usecasecontract.RegisterInput) usecasecontract.ValidationErrors {
	var errs usecasecontract.ValidationErrors
	switch {
	case in.Faculty == "":
		errs = append(errs, usecasecontract.FieldError{Field: "faculty", Message: "Faculty is required"})
	case !entity.IsValidFaculty(in.Faculty):
		errs = append(errs, usecasecontract.FieldError{
			Field:   "faculty",
			Message: fmt.Sprintf("`%s` is not a valid faculty", in.Faculty),
		})
	}
	switch {
	case in.Campus == "":
		errs = append(errs, usecasecontract.FieldError{Field: "campus", Message: "Campus is required"})
	case !entity.IsValidCampus(in.Campus):
		errs = append(errs, usecasecontract.FieldError{
			Field:   "campus",
			Message: fmt.Sprintf("`%s` is not a valid campus", in.Campus),
		})
	}
	return errs
}
