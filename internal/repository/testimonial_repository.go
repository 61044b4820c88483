package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/unclebandit/sparkles-site/internal/model"
)

type TestimonialRepositoryInterface interface {
	ListActive(ctx context.Context) ([]*model.Testimonial, error)
	ListAll(ctx context.Context) ([]*model.Testimonial, error)
	Insert(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, t *model.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type TestimonialRepository struct {
	DB *sql.DB
}

var _ TestimonialRepositoryInterface = (*TestimonialRepository)(nil)

const testimonialColumns = `id, name, location, message, rating, avatar_url, is_active, created_at, updated_at`

func (r *TestimonialRepository) ListActive(ctx context.Context) ([]*model.Testimonial, error) {
	return r.list(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE is_active=TRUE ORDER BY created_at DESC`)
}

func (r *TestimonialRepository) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	return r.list(ctx, `SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
}

func (r *TestimonialRepository) list(ctx context.Context, query string) ([]*model.Testimonial, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Testimonial{}
	for rows.Next() {
		t := &model.Testimonial{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Message, &t.Rating, &t.AvatarURL, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TestimonialRepository) Insert(ctx context.Context, t *model.Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `
        INSERT INTO testimonials (id, name, location, message, rating, avatar_url, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	return r.DB.QueryRowContext(ctx, query, t.ID, t.Name, t.Location, t.Message, t.Rating, t.AvatarURL, t.IsActive).
		Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *TestimonialRepository) Update(ctx context.Context, t *model.Testimonial) error {
	query := `
        UPDATE testimonials
        SET name=$1, location=$2, message=$3, rating=$4, avatar_url=$5, is_active=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING created_at, updated_at
    `
	err := r.DB.QueryRowContext(ctx, query, t.Name, t.Location, t.Message, t.Rating, t.AvatarURL, t.IsActive, t.ID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return notFound("testimonial", t.ID)
	}
	return err
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "testimonials", "testimonial", id)
}
