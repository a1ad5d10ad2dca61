package dto

import "github.com/yigit/alumnihub/internal/app/models"

// CreateInquiryRequest represents the public contact form.
// Presence is checked by the service so every missing field yields one message;
// the validate tags only bound the format of what was sent.
type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"omitempty,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"omitempty,max=5000"`
}

// UpdateInquiryStatusRequest advances an inquiry through new -> read -> replied
type UpdateInquiryStatusRequest struct {
	Status models.InquiryStatus `json:"status" binding:"required,oneof=new read replied" example:"read"`
}
