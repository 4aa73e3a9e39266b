package models

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleInstructor, RoleStudent:
		return Role(s), nil
	}
	return "", errors.New("role must be instructor or student")
}

// User is the role-bearing profile record written on registration.
// Role is immutable after registration; no operation changes it.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name,omitempty"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CreatedAt    int64  `json:"created_at"`
}

func (u *User) Validate() error {
	if !strings.Contains(u.Email, "@") {
		return errors.New("invalid email")
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}

// Identity is the authenticated-session projection of a User, threaded
// through request contexts rather than held in a process-wide singleton.
type Identity struct {
	ID   string
	Role Role
}

func (id Identity) IsInstructor() bool { return id.Role == RoleInstructor }
