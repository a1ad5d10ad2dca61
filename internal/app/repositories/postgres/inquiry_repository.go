package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

const inquirySelect = `SELECT id::text, name, email, subject, message, status, created_at, updated_at FROM inquiries`

// InquiryRepository handles database operations for contact inquiries
type InquiryRepository struct {
	db *pgxpool.Pool
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var i models.Inquiry
	if err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Subject, &i.Message, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// List retrieves all inquiries, newest first
func (r *InquiryRepository) List(ctx context.Context) ([]*models.Inquiry, error) {
	rows, err := r.db.Query(ctx, inquirySelect+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	inquiries := make([]*models.Inquiry, 0)
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, rows.Err()
}

// GetByID retrieves an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	if !validID(id) {
		return nil, apperrors.ErrResourceNotFound
	}

	inquiry, err := scanInquiry(r.db.QueryRow(ctx, inquirySelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return inquiry, nil
}

// Create stores a new inquiry with status new
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO inquiries (name, email, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, created_at, updated_at`,
		inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message, inquiry.Status,
	).Scan(&inquiry.ID, &inquiry.CreatedAt, &inquiry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating inquiry: %w", err)
	}
	return nil
}

// UpdateStatus sets the handling status of an inquiry
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	if !validID(id) {
		return apperrors.ErrResourceNotFound
	}

	cmdTag, err := r.db.Exec(ctx, `UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating inquiry status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
