package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/unclebandit/sparkles-site/internal/model"
)

type InquiryRepositoryInterface interface {
	CreateMessage(ctx context.Context, m *model.ContactMessage) error
	GetMessage(ctx context.Context, id string) (*model.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id, status, lastError string) error
	ListMessages(ctx context.Context, limit int) ([]*model.ContactMessage, error)
	Subscribe(ctx context.Context, s *model.Subscriber) error
	ListSubscribers(ctx context.Context) ([]*model.Subscriber, error)
}

type InquiryRepository struct {
	DB *sql.DB
}

var _ InquiryRepositoryInterface = (*InquiryRepository)(nil)

func (r *InquiryRepository) CreateMessage(ctx context.Context, m *model.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = model.MessagePending
	}
	query := `
        INSERT INTO contact_messages (id, name, email, message, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	return r.DB.QueryRowContext(ctx, query, m.ID, m.Name, m.Email, m.Message, m.Status).Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *InquiryRepository) GetMessage(ctx context.Context, id string) (*model.ContactMessage, error) {
	query := `
        SELECT id, name, email, message, status, last_error, created_at, updated_at
        FROM contact_messages WHERE id=$1
    `
	var m model.ContactMessage
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.LastError, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *InquiryRepository) UpdateMessageStatus(ctx context.Context, id, status, lastError string) error {
	query := `UPDATE contact_messages SET status=$1, last_error=$2, updated_at=NOW() WHERE id=$3`
	_, err := r.DB.ExecContext(ctx, query, status, lastError, id)
	return err
}

const (
	defaultMessageLimit = 100
	maxMessageLimit     = 500
)

func messageLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultMessageLimit
	case limit > maxMessageLimit:
		return maxMessageLimit
	}
	return limit
}

func (r *InquiryRepository) ListMessages(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, name, email, message, status, last_error, created_at, updated_at
        FROM contact_messages ORDER BY created_at DESC LIMIT $1
    `, messageLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.ContactMessage{}
	for rows.Next() {
		m := &model.ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.LastError, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Subscribe is idempotent on email; an existing row is loaded into s.
func (r *InquiryRepository) Subscribe(ctx context.Context, s *model.Subscriber) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `
        INSERT INTO newsletter_subscribers (id, email, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (email) DO UPDATE SET email=EXCLUDED.email
        RETURNING id, created_at
    `
	return r.DB.QueryRowContext(ctx, query, s.ID, s.Email).Scan(&s.ID, &s.CreatedAt)
}

func (r *InquiryRepository) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, email, created_at FROM newsletter_subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Subscriber{}
	for rows.Next() {
		s := &model.Subscriber{}
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
