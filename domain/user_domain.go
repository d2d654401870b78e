package domain

import (
	"errors"
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login success"
	MessageSuccessLogout      = "logout success"
	MessageSuccessGetUsers    = "success get users"
	MessageSuccessGetUser     = "success get user"
	MessageSuccessSetPassword = "password changed successfully"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedLogout      = "failed to logout"
	MessageFailedGetUsers    = "failed to get users"
	MessageFailedGetUser     = "failed to get user"
	MessageFailedSetPassword = "failed to change password"

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyUsed     = errors.New("email already used")
	ErrUsernameAlreadyUsed  = errors.New("username already used")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrWrongCurrentPassword = errors.New("current password is wrong")
	ErrHashPassword         = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,username,max=150"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=150"`
	}

	RegisterResponse struct {
		ID        int64  `json:"id"`
		Email     string `json:"email"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AuthToken string `json:"auth_token"`
	}

	SetPasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8,max=150"`
	}

	UserResponse struct {
		ID           int64  `json:"id"`
		Email        string `json:"email"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
	}
)
