package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/unclebandit/sparkles-site/internal/model"
)

type FAQRepositoryInterface interface {
	ListActive(ctx context.Context) ([]*model.FAQ, error)
	ListAll(ctx context.Context) ([]*model.FAQ, error)
	Insert(ctx context.Context, f *model.FAQ) error
	Update(ctx context.Context, f *model.FAQ) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type FAQRepository struct {
	DB *sql.DB
}

var _ FAQRepositoryInterface = (*FAQRepository)(nil)

const faqColumns = `id, question, answer, order_index, is_active, created_at, updated_at`

func (r *FAQRepository) ListActive(ctx context.Context) ([]*model.FAQ, error) {
	return r.list(ctx, `SELECT `+faqColumns+` FROM faqs WHERE is_active=TRUE ORDER BY order_index ASC, created_at ASC`)
}

func (r *FAQRepository) ListAll(ctx context.Context) ([]*model.FAQ, error) {
	return r.list(ctx, `SELECT `+faqColumns+` FROM faqs ORDER BY order_index ASC, created_at ASC`)
}

func (r *FAQRepository) list(ctx context.Context, query string) ([]*model.FAQ, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.FAQ{}
	for rows.Next() {
		f := &model.FAQ{}
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.OrderIndex, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FAQRepository) Insert(ctx context.Context, f *model.FAQ) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	query := `
        INSERT INTO faqs (id, question, answer, order_index, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	return r.DB.QueryRowContext(ctx, query, f.ID, f.Question, f.Answer, f.OrderIndex, f.IsActive).
		Scan(&f.CreatedAt, &f.UpdatedAt)
}

func (r *FAQRepository) Update(ctx context.Context, f *model.FAQ) error {
	query := `
        UPDATE faqs
        SET question=$1, answer=$2, order_index=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at
    `
	err := r.DB.QueryRowContext(ctx, query, f.Question, f.Answer, f.OrderIndex, f.IsActive, f.ID).
		Scan(&f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return notFound("faq", f.ID)
	}
	return err
}

func (r *FAQRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "faqs", "faq", id)
}

// Reorder sets order_index to 1..n following ids, in one transaction.
func (r *FAQRepository) Reorder(ctx context.Context, ids []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE faqs SET order_index=$1, updated_at=NOW() WHERE id=$2`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, id := range ids {
		res, err := stmt.ExecContext(ctx, i+1, id)
		if err != nil {
			return fmt.Errorf("reorder faq %s: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound("faq", id)
		}
	}
	return tx.Commit()
}
