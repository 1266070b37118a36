package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avaldez/inscripciones/internal/app/models"
)

// SubjectRepository handles database operations for subjects (materias)
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// GetByProgramAndYear retrieves the subjects taught in one (program, year) pair
func (r *SubjectRepository) GetByProgramAndYear(ctx context.Context, programID, yearID int64) ([]models.Subject, error) {
	query := `
		SELECT id_materia, nombre, id_carrera, id_anio
		FROM materias
		WHERE id_carrera = $1 AND id_anio = $2
		ORDER BY id_materia
	`

	rows, err := r.db.Query(ctx, query, programID, yearID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.ProgramID,
			&subject.YearID,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Upsert creates the subject if missing, keyed on the unique
// (nombre, id_carrera, id_anio) triple. Used by the startup seeder.
func (r *SubjectRepository) Upsert(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO materias (nombre, id_carrera, id_anio)
		VALUES ($1, $2, $3)
		ON CONFLICT (nombre, id_carrera, id_anio) DO UPDATE SET nombre = EXCLUDED.nombre
		RETURNING id_materia
	`

	err := r.db.QueryRow(ctx, query, subject.Name, subject.ProgramID, subject.YearID).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("error upserting subject: %w", err)
	}

	return nil
}
