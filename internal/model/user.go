package model

import "time"

// User represents a registered user in the database.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents a password reset request.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// AuthResponse represents a successful login with a session token and user info.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (never the hash).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LookupRequest represents a point-in-time DNC lookup request.
// LookupDate uses the MM/DD/YYYY format the registry UI has always accepted.
type LookupRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	LookupDate  string `json:"lookupDate"`
}

// HistoryRequest represents a DNC registration history request.
type HistoryRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}
