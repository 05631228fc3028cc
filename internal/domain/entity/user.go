package entity

import (
	"time"
)

// User represents a registered campus account.
type User struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	FirstName     string    `bson:"firstName" json:"firstName"`
	LastName      string    `bson:"lastName" json:"lastName"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"password" json:"-"`
	Role          UserRole  `bson:"role" json:"role"`
	StudentNumber string    `bson:"studentNumber,omitempty" json:"studentNumber,omitempty"`
	StaffNumber   string    `bson:"staffNumber,omitempty" json:"staffNumber,omitempty"`
	Faculty       string    `bson:"faculty,omitempty" json:"faculty,omitempty"`
	Campus        string    `bson:"campus,omitempty" json:"campus,omitempty"`
	IsVerified    bool      `bson:"isVerified" json:"isVerified"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`

	// plaintext set during the current operation; hashed by the store on write
	pendingPassword *string
}

// SetPassword records a new plaintext password. The store hashes it on the
// next write and clears it afterwards.
func (u *User) SetPassword(plain string) {
	u.pendingPassword = &plain
}

// PendingPassword returns the plaintext set with SetPassword, if any.
func (u *User) PendingPassword() (string, bool) {
	if u.pendingPassword == nil {
		return "", false
	}
	return *u.pendingPassword, true
}

// ApplyPasswordHash stores the hash and drops the pending plaintext.
func (u *User) ApplyPasswordHash(hash string) {
	u.PasswordHash = hash
	u.pendingPassword = nil
}

// Public returns a copy without any credential material.
func (u User) Public() User {
	u.PasswordHash = ""
	u.pendingPassword = nil
	return u
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleLecturer UserRole = "lecturer"
	UserRoleAdmin    UserRole = "admin"
)

func DefaultRole() UserRole {
	return UserRoleStudent
}

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleLecturer, UserRoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role is identified by a staff number.
func (r UserRole) IsStaff() bool {
	return r == UserRoleLecturer || r == UserRoleAdmin
}

// BelongsToFaculty reports whether faculty and campus apply to the role.
func (r UserRole) BelongsToFaculty() bool {
	return r == UserRoleStudent || r == UserRoleLecturer
}

var faculties = []string{
	"Engineering",
	"Science",
	"Arts & Humanities",
	"Business",
	"Law",
	"Education",
	"Information Communication and Technology",
}

var campuses = []string{
	"Main Campus",
	"Art Campus",
	"Science Campus",
	"Soshanguve North Campus",
	"Soshanguve South Campus",
}

// Faculties lists the accepted faculty names.
func Faculties() []string {
	return append([]string(nil), faculties...)
}

// Campuses lists the accepted campus names.
func Campuses() []string {
	return append([]string(nil), campuses...)
}

func IsValidFaculty(name string) bool {
	return contains(faculties, name)
}

func IsValidCampus(name string) bool {
	return contains(campuses, name)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
