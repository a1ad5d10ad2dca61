package models

import "time"

// EventType categorises alumni events
type EventType string

const (
	EventTypeMeetup   EventType = "Meetup"
	EventTypeReunion  EventType = "Reunion"
	EventTypeWorkshop EventType = "Workshop"
	EventTypeWebinar  EventType = "Webinar"
)

// Event defines an alumni event based on the 'events' table
type Event struct {
	ID          string    `json:"_id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	// Time is the free-form start time shown next to the date, e.g. "18:30"
	Time        string       `json:"time" db:"time" example:"18:30"`
	Location    string       `json:"location" db:"location"`
	Type        EventType    `json:"type" db:"type" example:"Meetup"`
	OrganizerID string       `json:"-" db:"organizer_id"`
	Organizer   *UserSummary `json:"organizer,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

// EventFilter narrows an event listing
type EventFilter struct {
	Type EventType
}
