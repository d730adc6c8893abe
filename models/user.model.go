package models

import "time"

// User roles accepted at registration
const (
	RoleStudent    = "Student"
	RoleInstructor = "Instructor"
)

type User struct {
	UserID       string    `json:"userId" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Role         string    `json:"role" gorm:"not null"` // Student or Instructor
	PasswordHash string    `json:"-" gorm:"not null"`
	Version      uint      `json:"-" gorm:"not null;default:1"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// IsValidRole reports whether role is one of the accepted user roles
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleInstructor
}
