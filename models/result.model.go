package models

import "time"

// Result records one assessment attempt by a user
type Result struct {
	ResultID     string    `json:"resultId" gorm:"primaryKey;size:36"`
	AssessmentID string    `json:"assessmentId" gorm:"index;size:36;not null"`
	UserID       string    `json:"userId" gorm:"index;size:36;not null"`
	Score        int       `json:"score" gorm:"default:0"`
	AttemptDate  time.Time `json:"attemptDate"`
	Version      uint      `json:"-" gorm:"not null;default:1"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
