package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/pkg/logger"
)

// RegistrationRepository handles exam registration database operations
type RegistrationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTx inserts one registration row inside the caller's transaction.
// The composite foreign key on (id_carrera, id_anio, id_materia) rejects
// subjects that do not belong to the stated program and year.
func (r *RegistrationRepository) CreateTx(ctx context.Context, tx pgx.Tx, registration *models.Registration) error {
	query := `
		INSERT INTO inscripciones_examenes
			(id_estudiante, id_carrera, id_anio, id_materia, cohorte, condicion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_inscripcion, fecha_inscripcion
	`

	err := tx.QueryRow(ctx, query,
		registration.StudentID,
		registration.ProgramID,
		registration.YearID,
		registration.SubjectID,
		registration.Cohort,
		registration.Condition,
	).Scan(&registration.ID, &registration.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting registration: %w", err)
	}

	return nil
}

// listingQuery builds the joined listing statement: every registration with
// its student, program, year and subject, ordered newest first
func (r *RegistrationRepository) listingQuery() (string, []interface{}, error) {
	return r.sb.Select(
		"i.id_inscripcion", "i.fecha_inscripcion", "i.cohorte", "i.condicion",
		"e.dni", "e.apellido",
		"e.nombre AS nombre_alumno", "e.email",
		"c.nombre AS carrera",
		"a.nombre AS anio_cursada",
		"m.nombre AS materia",
	).
		From("inscripciones_examenes i").
		Join("estudiantes e ON i.id_estudiante = e.id_estudiante").
		Join("carreras c ON i.id_carrera = c.id_carrera").
		Join("anos_cursada a ON i.id_anio = a.id_anio").
		Join("materias m ON i.id_materia = m.id_materia").
		OrderBy("i.fecha_inscripcion DESC").
		ToSql()
}

// GetAllDetailed retrieves every registration joined with its student,
// program, year and subject, newest first. The dashboard filters client-side,
// so there is no pagination or server-side filtering here.
func (r *RegistrationRepository) GetAllDetailed(ctx context.Context) ([]models.RegistrationDetail, error) {
	querySQL, queryArgs, err := r.listingQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building registrations listing SQL")
		return nil, fmt.Errorf("failed to build registrations query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}
	defer rows.Close()

	var details []models.RegistrationDetail
	for rows.Next() {
		var detail models.RegistrationDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.CreatedAt,
			&detail.Cohort,
			&detail.Condition,
			&detail.DNI,
			&detail.Surname,
			&detail.StudentName,
			&detail.Email,
			&detail.Program,
			&detail.Year,
			&detail.Subject,
		); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
