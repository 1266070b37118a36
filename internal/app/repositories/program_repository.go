package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avaldez/inscripciones/internal/app/models"
)

// ProgramRepository handles database operations for programs (carreras)
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
	}
}

// selectProgramsSQL coalesces the nullable descripcion so rows inserted
// outside the seeder still scan into a plain string
const selectProgramsSQL = `
	SELECT id_carrera, nombre, COALESCE(descripcion, '')
	FROM carreras
	ORDER BY id_carrera
`

// GetAll retrieves all programs in insertion order
func (r *ProgramRepository) GetAll(ctx context.Context) ([]models.Program, error) {
	rows, err := r.db.Query(ctx, selectProgramsSQL)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.Name,
			&program.Description,
		); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}

// Upsert creates the program if missing, keyed on the unique name, and
// resolves its id either way. Used by the startup seeder.
func (r *ProgramRepository) Upsert(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO carreras (nombre, descripcion)
		VALUES ($1, $2)
		ON CONFLICT (nombre) DO UPDATE SET descripcion = EXCLUDED.descripcion
		RETURNING id_carrera
	`

	err := r.db.QueryRow(ctx, query, program.Name, program.Description).Scan(&program.ID)
	if err != nil {
		return fmt.Errorf("error upserting program: %w", err)
	}

	return nil
}
