package model

import "time"

// Account is the shared shape of the two account roles. Admins (instructors)
// and users (students) live in disjoint tables with identical columns; an
// admin id and a user id are never interchangeable.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Admin is an instructor account. Admins own the courses they create.
type Admin = Account

// User is a student account. Users purchase and watch courses.
type User = Account

// SignupRequest is the payload for creating a user or admin account.
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
}

// SigninRequest is the payload for authenticating an account.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}
