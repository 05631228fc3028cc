package entity

import "errors"

// Store-level errors shared by repositories and use cases.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrDuplicateEmail         = errors.New("email already exists")
	ErrDuplicateStudentNumber = errors.New("student number already exists")
	ErrDuplicateStaffNumber   = errors.New("staff number already exists")
)
