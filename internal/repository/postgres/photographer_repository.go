package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/repository"
)

type photographerRepository struct {
	db *sqlx.DB
}

func NewPhotographerRepository(db *sqlx.DB) repository.PhotographerRepository {
	return &photographerRepository{db: db}
}

const photographerColumns = `
	id, name, city, gender, specialties, rating, base_price,
	experience_years, location_lat, location_lon, created_at, updated_at
`

func (r *photographerRepository) List(ctx context.Context) ([]domain.Photographer, error) {
	query := `SELECT` + photographerColumns + `FROM photographers ORDER BY id`
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photographers []domain.Photographer
	for rows.Next() {
		p, err := scanPhotographer(rows)
		if err != nil {
			return nil, err
		}
		photographers = append(photographers, *p)
	}
	return photographers, rows.Err()
}

func (r *photographerRepository) GetByID(ctx context.Context, id int) (*domain.Photographer, error) {
	query := `SELECT` + photographerColumns + `FROM photographers WHERE id = $1`
	row := r.db.QueryRowxContext(ctx, query, id)
	p, err := scanPhotographerRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotographerNotFound
		}
		return nil, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPhotographer(rows *sqlx.Rows) (*domain.Photographer, error) {
	return scanPhotographerRow(rows)
}

func scanPhotographerRow(row rowScanner) (*domain.Photographer, error) {
	var p domain.Photographer
	err := row.Scan(
		&p.ID, &p.Name, &p.City, &p.Gender, pq.Array(&p.Specialties),
		&p.Rating, &p.BasePrice, &p.ExperienceYears,
		&p.LocationLat, &p.LocationLon, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type cityRepository struct {
	db *sqlx.DB
}

func NewCityRepository(db *sqlx.DB) repository.CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) List(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	query := `SELECT name, lat, lon FROM cities ORDER BY name`
	err := r.db.SelectContext(ctx, &cities, query)
	return cities, err
}
