package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/unclebandit/sparkles-site/internal/model"
)

type LocationRepositoryInterface interface {
	ListActive(ctx context.Context) ([]*model.StoreLocation, error)
	ListAll(ctx context.Context) ([]*model.StoreLocation, error)
	GetByID(ctx context.Context, id string) (*model.StoreLocation, error)
	Insert(ctx context.Context, l *model.StoreLocation) error
	Update(ctx context.Context, l *model.StoreLocation) error
	Delete(ctx context.Context, id string) error
}

type LocationRepository struct {
	DB *sql.DB
}

var _ LocationRepositoryInterface = (*LocationRepository)(nil)

const locationColumns = `id, name, address, phone, store_type, latitude, longitude, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (*model.StoreLocation, error) {
	l := &model.StoreLocation{}
	var lat, lng sql.NullFloat64
	if err := row.Scan(&l.ID, &l.Name, &l.Address, &l.Phone, &l.StoreType, &lat, &lng, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if lat.Valid {
		l.Latitude = &lat.Float64
	}
	if lng.Valid {
		l.Longitude = &lng.Float64
	}
	return l, nil
}

func (r *LocationRepository) ListActive(ctx context.Context) ([]*model.StoreLocation, error) {
	return r.list(ctx, `SELECT `+locationColumns+` FROM store_locations WHERE is_active=TRUE ORDER BY created_at ASC`)
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]*model.StoreLocation, error) {
	return r.list(ctx, `SELECT `+locationColumns+` FROM store_locations ORDER BY created_at ASC`)
}

func (r *LocationRepository) list(ctx context.Context, query string) ([]*model.StoreLocation, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.StoreLocation{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*model.StoreLocation, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM store_locations WHERE id=$1`, id)
	l, err := scanLocation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("store location", id)
		}
		return nil, err
	}
	return l, nil
}

func (r *LocationRepository) Insert(ctx context.Context, l *model.StoreLocation) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	query := `
        INSERT INTO store_locations (id, name, address, phone, store_type, latitude, longitude, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	return r.DB.QueryRowContext(ctx, query, l.ID, l.Name, l.Address, l.Phone, l.StoreType, l.Latitude, l.Longitude, l.IsActive).
		Scan(&l.CreatedAt, &l.UpdatedAt)
}

func (r *LocationRepository) Update(ctx context.Context, l *model.StoreLocation) error {
	query := `
        UPDATE store_locations
        SET name=$1, address=$2, phone=$3, store_type=$4, latitude=$5, longitude=$6, is_active=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING created_at, updated_at
    `
	err := r.DB.QueryRowContext(ctx, query, l.Name, l.Address, l.Phone, l.StoreType, l.Latitude, l.Longitude, l.IsActive, l.ID).
		Scan(&l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return notFound("store location", l.ID)
	}
	return err
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "store_locations", "store location", id)
}
