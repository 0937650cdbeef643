package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a persisted account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64  `json:"userId"`
	UserName     string `json:"userName"`
	PasswordHash string `json:"-"`
}

// UserProfile is the public projection of a user.
type UserProfile struct {
	ID       int64  `json:"userId"`
	UserName string `json:"userName"`
}

type UserCreate struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// ToUser maps the request to a user carrying the already hashed password.
func (u UserCreate) ToUser(passwordHash string) User {
	return User{UserName: u.UserName, PasswordHash: passwordHash}
}

type UserLogin struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type UserChangePassword struct {
	UserID      int64  `json:"userId"`
	NewPassword string `json:"newPassword"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Token is an issued bearer credential.
type Token struct {
	ID        int64
	UserID    int64
	Code      uuid.UUID
	ExpiresAt time.Time
}

// ValidAt reports whether the token is still usable at t.
func (t Token) ValidAt(now time.Time) bool {
	return now.Before(t.ExpiresAt)
}
