package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avaldez/inscripciones/internal/app/models"
)

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db *pgxpool.Pool
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(db *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{
		db: db,
	}
}

// GetAll retrieves all academic years ordered by rank ascending
func (r *AcademicYearRepository) GetAll(ctx context.Context) ([]models.AcademicYear, error) {
	query := `
		SELECT id_anio, nombre, orden
		FROM anos_cursada
		ORDER BY orden ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic years: %w", err)
	}
	defer rows.Close()

	var years []models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(
			&year.ID,
			&year.Name,
			&year.Rank,
		); err != nil {
			return nil, err
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

// Upsert creates the year if missing, keyed on the unique name, and resolves
// its id either way. Used by the startup seeder.
func (r *AcademicYearRepository) Upsert(ctx context.Context, year *models.AcademicYear) error {
	query := `
		INSERT INTO anos_cursada (nombre, orden)
		VALUES ($1, $2)
		ON CONFLICT (nombre) DO UPDATE SET orden = EXCLUDED.orden
		RETURNING id_anio
	`

	err := r.db.QueryRow(ctx, query, year.Name, year.Rank).Scan(&year.ID)
	if err != nil {
		return fmt.Errorf("error upserting academic year: %w", err)
	}

	return nil
}
