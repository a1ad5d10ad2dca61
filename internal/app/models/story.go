package models

import "time"

// StoryStatus is the moderation state of a success story
type StoryStatus string

const (
	StoryStatusPending  StoryStatus = "pending"
	StoryStatusApproved StoryStatus = "approved"
	StoryStatusRejected StoryStatus = "rejected"
)

// SuccessStory defines an alumni success story based on the 'success_stories' table
type SuccessStory struct {
	ID              string       `json:"_id" db:"id"`
	Name            string       `json:"name" db:"name"`
	Role            string       `json:"role" db:"role" example:"Senior Engineer"`
	Company         string       `json:"company" db:"company"`
	Content         string       `json:"content" db:"content"`
	Image           *string      `json:"image,omitempty" db:"image"`
	LinkedinProfile *string      `json:"linkedinProfile,omitempty" db:"linkedin_profile"`
	UserID          string       `json:"-" db:"user_id"`
	User            *UserSummary `json:"user,omitempty"`
	Status          StoryStatus  `json:"status" db:"status" example:"approved"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`
}
