package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/unclebandit/sparkles-site/internal/model"
)

type ContentRepositoryInterface interface {
	GetBySection(ctx context.Context, name string) (*model.ContentSection, error)
	Insert(ctx context.Context, s *model.ContentSection) error
	Update(ctx context.Context, s *model.ContentSection) error
	List(ctx context.Context) ([]*model.ContentSection, error)
}

type ContentRepository struct {
	DB *sql.DB
}

var _ ContentRepositoryInterface = (*ContentRepository)(nil)

// GetBySection returns nil, nil when the section has never been saved.
func (r *ContentRepository) GetBySection(ctx context.Context, name string) (*model.ContentSection, error) {
	query := `
        SELECT id, section_name, content, created_at, updated_at
        FROM content_sections WHERE section_name=$1
    `
	var s model.ContentSection
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&s.ID, &s.SectionName, &raw, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.Content = raw
	return &s, nil
}

func (r *ContentRepository) Insert(ctx context.Context, s *model.ContentSection) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	// jsonb must be sent as text; lib/pq encodes []byte as bytea.
	query := `
        INSERT INTO content_sections (id, section_name, content, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	return r.DB.QueryRowContext(ctx, query, s.ID, s.SectionName, string(s.Content)).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *ContentRepository) Update(ctx context.Context, s *model.ContentSection) error {
	query := `
        UPDATE content_sections
        SET content=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING updated_at
    `
	err := r.DB.QueryRowContext(ctx, query, string(s.Content), s.ID).Scan(&s.UpdatedAt)
	if err == sql.ErrNoRows {
		return notFound("content section", s.ID)
	}
	return err
}

func (r *ContentRepository) List(ctx context.Context) ([]*model.ContentSection, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, section_name, content, created_at, updated_at
        FROM content_sections ORDER BY section_name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []*model.ContentSection{}
	for rows.Next() {
		s := &model.ContentSection{}
		var raw []byte
		if err := rows.Scan(&s.ID, &s.SectionName, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Content = raw
		sections = append(sections, s)
	}
	return sections, rows.Err()
}
