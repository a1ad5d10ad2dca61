package dto

import "github.com/yigit/alumnihub/internal/app/models"

// CreateEventRequest represents the event form. Date accepts RFC3339 or YYYY-MM-DD.
type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required,notblank,max=200" example:"Class of 2015 Reunion"`
	Description string           `json:"description" binding:"required,notblank"`
	Date        string           `json:"date" binding:"required,notblank" example:"2025-06-01T18:30:00Z"`
	Time        string           `json:"time" binding:"required,notblank,max=20" example:"18:30"`
	Location    string           `json:"location" binding:"required,notblank,max=200"`
	Type        models.EventType `json:"type" binding:"required,oneof=Meetup Reunion Workshop Webinar" example:"Reunion"`
}

// UpdateEventRequest carries only the fields the client sent
type UpdateEventRequest struct {
	Title       *string           `json:"title" binding:"omitempty,max=200"`
	Description *string           `json:"description"`
	Date        *string           `json:"date"`
	Time        *string           `json:"time" binding:"omitempty,max=20"`
	Location    *string           `json:"location" binding:"omitempty,max=200"`
	Type        *models.EventType `json:"type" binding:"omitempty,oneof=Meetup Reunion Workshop Webinar"`
}

// EventListQuery represents GET /api/events query parameters
type EventListQuery struct {
	Type string `form:"type"`
}
