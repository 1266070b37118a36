package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// upsertStudentSQL resolves the student id in a single statement: the
// conflict target is the unique dni, so a resubmission updates the identity
// fields in place instead of inserting a second row
const upsertStudentSQL = `
	INSERT INTO estudiantes (dni, apellido, nombre, email)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (dni) DO UPDATE SET
		apellido = EXCLUDED.apellido,
		nombre = EXCLUDED.nombre,
		email = EXCLUDED.email
	RETURNING id_estudiante
`

// UpsertTx inserts the student or, when the DNI already exists, overwrites
// surname, name and email with the submitted values (last submission wins).
// The resolved internal id is written back to the model. Runs inside the
// caller's transaction so the whole submission commits or rolls back as one.
func (r *StudentRepository) UpsertTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	err := tx.QueryRow(ctx, upsertStudentSQL, student.DNI, student.Surname, student.Name, student.Email).Scan(&student.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unreachable under correct upsert semantics, kept as the
			// internal-error path for a failed id resolution.
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error upserting student: %w", err)
	}

	return nil
}
