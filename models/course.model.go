package models

import "time"

// Course represents a learning course owned by an instructor
type Course struct {
	CourseID     string    `json:"courseId" gorm:"primaryKey;size:36"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	InstructorID string    `json:"instructorId" gorm:"index;size:36;not null"` // owner, always server-derived
	MediaUrl     *string   `json:"mediaUrl"`
	Level        *string   `json:"level"`
	Category     *string   `json:"category"`
	Duration     *string   `json:"duration"`
	Status       *string   `json:"status"`
	Price        float64   `json:"price" gorm:"default:0"` // 0 for free courses
	Version      uint      `json:"-" gorm:"not null;default:1"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
