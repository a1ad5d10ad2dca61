package memory

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// InquiryRepository stores contact inquiries in memory
type InquiryRepository struct {
	inquiries *table[*models.Inquiry]
}

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{inquiries: newTable(func(i *models.Inquiry) *models.Inquiry {
		c := *i
		return &c
	})}
}

func (r *InquiryRepository) List(_ context.Context) ([]*models.Inquiry, error) {
	return r.inquiries.list(nil), nil
}

func (r *InquiryRepository) GetByID(_ context.Context, id string) (*models.Inquiry, error) {
	i, ok := r.inquiries.get(id)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return i, nil
}

func (r *InquiryRepository) Create(_ context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = newID()
	inquiry.CreatedAt = now()
	inquiry.UpdatedAt = inquiry.CreatedAt
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	r.inquiries.insert(inquiry.ID, inquiry)
	return nil
}

func (r *InquiryRepository) UpdateStatus(_ context.Context, id string, status models.InquiryStatus) error {
	_, ok := r.inquiries.modify(id, func(existing *models.Inquiry) *models.Inquiry {
		existing.Status = status
		existing.UpdatedAt = now()
		return existing
	})
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
