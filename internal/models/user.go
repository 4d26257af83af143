package models

import (
	"errors"
	"regexp"
	"strings"
)

// Role represents a user role in the system
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// Valid returns true if the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWorker:
		return true
	default:
		return false
	}
}

// User represents an operator of the application
type User struct {
	ID           int    `json:"id" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password"`
	Email        string `json:"email" db:"email"`
	Role         Role   `json:"role" db:"role"`
	CreatedAt    string `json:"created_at" db:"created_at"`
	LastLogin    string `json:"last_login" db:"last_login"`
	LastLogout   string `json:"last_logout" db:"last_logout"`
}

// UserCreateRequest represents the data needed to create a new user
type UserCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

var userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates the user data
func (u *User) Validate() error {
	if err := validateUsername(u.Username); err != nil {
		return err
	}

	if err := validateUserEmail(u.Email); err != nil {
		return err
	}

	if !u.Role.Valid() {
		return errors.New("invalid user role")
	}

	return nil
}

// Validate validates user creation data
func (req *UserCreateRequest) Validate() error {
	if err := validateUsername(req.Username); err != nil {
		return err
	}

	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	if err := validateUserEmail(req.Email); err != nil {
		return err
	}

	if !req.Role.Valid() {
		return errors.New("invalid user role")
	}

	return nil
}

// validateUsername validates a username
func validateUsername(username string) error {
	if username == "" {
		return errors.New("username is required")
	}

	if len(username) > 50 {
		return errors.New("username must be less than 50 characters")
	}

	if strings.TrimSpace(username) != username {
		return errors.New("username cannot contain leading or trailing spaces")
	}

	return nil
}

// validateUserEmail validates a user email address (optional field)
func validateUserEmail(email string) error {
	if email == "" {
		return nil
	}

	if len(email) > 255 {
		return errors.New("email must be less than 255 characters")
	}

	if !userEmailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}

	return nil
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
