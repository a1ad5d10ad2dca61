package dto

import "github.com/yigit/alumnihub/internal/app/models"

// CreateJobRequest represents the job posting form
type CreateJobRequest struct {
	Title           string         `json:"title" binding:"required,notblank,max=200" example:"Backend Intern"`
	Company         string         `json:"company" binding:"required,notblank,max=200" example:"Acme"`
	Location        string         `json:"location" binding:"required,notblank,max=200" example:"Remote"`
	Type            models.JobType `json:"type" binding:"required,oneof=Full-time Part-time Internship Remote" example:"Internship"`
	Description     string         `json:"description" binding:"required,notblank"`
	Requirements    []string       `json:"requirements"`
	ApplicationLink string         `json:"applicationLink" binding:"omitempty,url"`
	ContactEmail    string         `json:"contactEmail" binding:"omitempty,email"`
}

// UpdateJobRequest carries only the fields the client sent.
// Absent fields keep their value; an empty optional field clears it.
type UpdateJobRequest struct {
	Title           *string         `json:"title" binding:"omitempty,max=200"`
	Company         *string         `json:"company" binding:"omitempty,max=200"`
	Location        *string         `json:"location" binding:"omitempty,max=200"`
	Type            *models.JobType `json:"type" binding:"omitempty,oneof=Full-time Part-time Internship Remote"`
	Description     *string         `json:"description"`
	Requirements    *[]string       `json:"requirements"`
	ApplicationLink *string         `json:"applicationLink" binding:"omitempty,url"`
	ContactEmail    *string         `json:"contactEmail" binding:"omitempty,email"`
}

// JobListQuery represents GET /api/jobs query parameters
type JobListQuery struct {
	Type     string `form:"type"`
	Location string `form:"location"`
	Keyword  string `form:"keyword"`
}
