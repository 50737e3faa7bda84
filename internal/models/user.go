package models

import "time"

// User represents a row in the PostgreSQL users table. Password holds a
// bcrypt hash, never cleartext.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // never serialize
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the JSON body for POST /api/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
