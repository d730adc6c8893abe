package models

import "time"

// Assessment belongs to a course. Mutation rights follow the course owner,
// not any field on the assessment itself.
type Assessment struct {
	AssessmentID string    `json:"assessmentId" gorm:"primaryKey;size:36"`
	CourseID     string    `json:"courseId" gorm:"index;size:36;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Questions    string    `json:"questions"` // serialized question list
	MaxScore     int       `json:"maxScore" gorm:"default:0"`
	Version      uint      `json:"-" gorm:"not null;default:1"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
