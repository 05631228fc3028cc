package dto

import (
	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

// RegisterRequest is the body of POST /register. Role-specific fields are
// optional at the transport level and validated per role downstream.
type RegisterRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	StudentNumber string `json:"studentNumber"`
	StaffNumber   string `json:"staffNumber"`
	Faculty       string `json:"faculty"`
	Campus        string `json:"campus"`
}

func (r RegisterRequest) ToInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Password:      r.Password,
		Role:          entity.UserRole(r.Role),
		StudentNumber: r.StudentNumber,
		StaffNumber:   r.StaffNumber,
		Faculty:       r.Faculty,
		Campus:        r.Campus,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

// ResendVerificationRequest carries the registration token. Email is
// accepted for compatibility with existing clients and not used.
type ResendVerificationRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type RegisterResponse struct {
	ID         string `json:"_id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Token      string `json:"token"`
}

func ToRegisterResponse(user entity.User, token string) RegisterResponse {
	return RegisterResponse{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Role:       string(user.Role),
		IsVerified: user.IsVerified,
		Token:      token,
	}
}

// LoginResponse projects the profile onto the user's role; fields that do
// not apply are returned as empty strings.
type LoginResponse struct {
	Token         string `json:"token"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	StudentNumber string `json:"studentNumber"`
	StaffNumber   string `json:"staffNumber"`
	Faculty       string `json:"faculty"`
	Campus        string `json:"campus"`
}

func ToLoginResponse(user entity.User, token string) LoginResponse {
	resp := LoginResponse{
		Token:     token,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      string(user.Role),
	}
	if user.Role == entity.UserRoleStudent {
		resp.StudentNumber = user.StudentNumber
	}
	if user.Role.IsStaff() {
		resp.StaffNumber = user.StaffNumber
	}
	if user.Role.BelongsToFaculty() {
		resp.Faculty = user.Faculty
		resp.Campus = user.Campus
	}
	return resp
}

type ProfileResponse struct {
	ID            string `json:"_id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	StudentNumber string `json:"studentNumber"`
	StaffNumber   string `json:"staffNumber"`
	Faculty       string `json:"faculty"`
	Campus        string `json:"campus"`
	IsVerified    bool   `json:"isVerified"`
}

func ToProfileResponse(user entity.User) ProfileResponse {
	return ProfileResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Role:          string(user.Role),
		StudentNumber: user.StudentNumber,
		StaffNumber:   user.StaffNumber,
		Faculty:       user.Faculty,
		Campus:        user.Campus,
		IsVerified:    user.IsVerified,
	}
}

type VerifiedUser struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	IsVerified    bool   `json:"isVerified"`
	Faculty       string `json:"faculty,omitempty"`
	Campus        string `json:"campus,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty"`
	StaffNumber   string `json:"staffNumber,omitempty"`
}

type VerifyEmailResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    VerifiedUser `json:"user"`
}

func ToVerifyEmailResponse(user entity.User, token string) VerifyEmailResponse {
	return VerifyEmailResponse{
		Success: true,
		Token:   token,
		User: VerifiedUser{
			ID:            user.ID,
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			Email:         user.Email,
			Role:          string(user.Role),
			IsVerified:    user.IsVerified,
			Faculty:       user.Faculty,
			Campus:        user.Campus,
			StudentNumber: user.StudentNumber,
			StaffNumber:   user.StaffNumber,
		},
	}
}

type ResendVerificationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
