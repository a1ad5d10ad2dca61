package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/email"
)

// InquiryService defines the contact form operations
type InquiryService interface {
	// CreateInquiry stores a public contact form submission and notifies the site owners
	CreateInquiry(ctx context.Context, req *dto.CreateInquiryRequest) (*models.Inquiry, error)
	ListInquiries(ctx context.Context, identity appAuth.Identity) ([]*models.Inquiry, error)
	GetInquiry(ctx context.Context, identity appAuth.Identity, id string) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, identity appAuth.Identity, id string, status models.InquiryStatus) (*models.Inquiry, error)
}

type inquiryServiceImpl struct {
	inquiryRepo repositories.InquiryRepository
	notifier    email.Notifier
	logger      zerolog.Logger
}

// NewInquiryService creates a new InquiryService. notifier may be nil.
func NewInquiryService(inquiryRepo repositories.InquiryRepository, notifier email.Notifier, logger zerolog.Logger) InquiryService {
	return &inquiryServiceImpl{
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateInquiry stores the submission with status new
func (s *inquiryServiceImpl) CreateInquiry(ctx context.Context, req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  models.InquiryStatusNew,
	}
	if inquiry.Name == "" || inquiry.Email == "" || inquiry.Subject == "" || inquiry.Message == "" {
		return nil, apperrors.NewValidationError("Please provide all fields")
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("error creating inquiry: %w", err)
	}

	// A failed notification never fails the submission
	if s.notifier != nil {
		err := s.notifier.SendInquiryNotification(email.InquiryMessage{
			ID:      inquiry.ID,
			Name:    inquiry.Name,
			Email:   inquiry.Email,
			Subject: inquiry.Subject,
			Message: inquiry.Message,
		})
		if err != nil {
			s.logger.Error().Err(err).Str("inquiryID", inquiry.ID).Msg("Failed to send inquiry notification")
		}
	}

	return inquiry, nil
}

// ListInquiries returns every inquiry to an admin
func (s *inquiryServiceImpl) ListInquiries(ctx context.Context, identity appAuth.Identity) ([]*models.Inquiry, error) {
	if err := appAuth.ValidateAdmin(identity); err != nil {
		return nil, err
	}
	inquiries, err := s.inquiryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing inquiries: %w", err)
	}
	return inquiries, nil
}

// GetInquiry returns one inquiry to an admin
func (s *inquiryServiceImpl) GetInquiry(ctx context.Context, identity appAuth.Identity, id string) (*models.Inquiry, error) {
	if err := appAuth.ValidateAdmin(identity); err != nil {
		return nil, err
	}
	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Inquiry", err)
	}
	return inquiry, nil
}

// UpdateStatus advances an inquiry along new -> read -> replied
func (s *inquiryServiceImpl) UpdateStatus(ctx context.Context, identity appAuth.Identity, id string, status models.InquiryStatus) (*models.Inquiry, error) {
	inquiry, err := s.GetInquiry(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if inquiry.Status == status {
		return inquiry, nil
	}
	if !inquiry.Status.CanTransitionTo(status) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidStatusTransition,
			Message: fmt.Sprintf("Cannot change inquiry status from %s to %s", inquiry.Status, status),
		}
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFound("Inquiry", err)
	}
	return s.inquiryRepo.GetByID(ctx, id)
}
