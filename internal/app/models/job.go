package models

import "time"

// JobType is the employment type of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

// Job defines a job posting based on the 'jobs' table
type Job struct {
	ID              string       `json:"_id" db:"id"`
	Title           string       `json:"title" db:"title" example:"Backend Intern"`
	Company         string       `json:"company" db:"company" example:"Acme"`
	Location        string       `json:"location" db:"location" example:"Istanbul"`
	Type            JobType      `json:"type" db:"type" example:"Internship"`
	Description     string       `json:"description" db:"description"`
	Requirements    []string     `json:"requirements" db:"requirements"`
	ApplicationLink *string      `json:"applicationLink,omitempty" db:"application_link"`
	ContactEmail    *string      `json:"contactEmail,omitempty" db:"contact_email"`
	PostedByID      string       `json:"-" db:"posted_by"`
	PostedBy        *UserSummary `json:"postedBy,omitempty"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`
}

// JobFilter narrows a job listing. Empty fields do not filter.
type JobFilter struct {
	Type     JobType
	Location string
	// Keyword matches title, company, description and requirements
	Keyword string
}
