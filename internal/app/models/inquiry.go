package models

import "time"

// InquiryStatus tracks how far a contact inquiry has been handled
type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusRead    InquiryStatus = "read"
	InquiryStatusReplied InquiryStatus = "replied"
)

var inquiryTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryStatusNew:  {InquiryStatusRead, InquiryStatusReplied},
	InquiryStatusRead: {InquiryStatusReplied},
}

// CanTransitionTo reports whether an inquiry may move from s to next
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	for _, allowed := range inquiryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Inquiry defines a contact form submission based on the 'inquiries' table
type Inquiry struct {
	ID        string        `json:"_id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Subject   string        `json:"subject" db:"subject"`
	Message   string        `json:"message" db:"message"`
	Status    InquiryStatus `json:"status" db:"status" example:"new"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}
