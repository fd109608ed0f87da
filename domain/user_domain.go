package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessGetMe           = "user profile retrieved successfully"
	MessageSuccessUpdateUser      = "user profile updated successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedUpdateUser      = "failed to update user profile"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountNotVerified   = errors.New("account email is not verified")
	ErrAccountAlreadyVerify = errors.New("account already verified")
)

type (
	RegisterRequest struct {
		FullName    string `json:"full_name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		CompanyName string `json:"company_name"`
		Industry    string `json:"industry"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UpdateUserRequest struct {
		FullName    string `json:"full_name" validate:"omitempty"`
		CompanyName string `json:"company_name" validate:"omitempty"`
		Industry    string `json:"industry" validate:"omitempty"`
	}

	MeResponse struct {
		ID          string `json:"id"`
		FullName    string `json:"full_name"`
		Email       string `json:"email"`
		CompanyName string `json:"company_name,omitempty"`
		Industry    string `json:"industry,omitempty"`
		IsVerified  bool   `json:"is_verified"`
	}
)
