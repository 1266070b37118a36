package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/app/models/dto"
	"github.com/avaldez/inscripciones/internal/db"
	"github.com/avaldez/inscripciones/internal/pkg/apperrors"
	"github.com/avaldez/inscripciones/internal/pkg/dberrors"
)

// TxRunner runs a function inside a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// StudentWriter upserts a student identity by DNI
type StudentWriter interface {
	UpsertTx(ctx context.Context, tx pgx.Tx, student *models.Student) error
}

// RegistrationWriter inserts registration rows
type RegistrationWriter interface {
	CreateTx(ctx context.Context, tx pgx.Tx, registration *models.Registration) error
}

// RegistrationLister retrieves the joined registrations listing
type RegistrationLister interface {
	GetAllDetailed(ctx context.Context) ([]models.RegistrationDetail, error)
}

// RegistrationService persists validated submissions and serves the listing.
// The whole write runs in one transaction: either the student upsert and
// every selected subject's registration row commit together, or nothing does.
type RegistrationService struct {
	tx            TxRunner
	students      StudentWriter
	registrations RegistrationWriter
	listing       RegistrationLister
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(tx TxRunner, students StudentWriter, registrations RegistrationWriter, listing RegistrationLister) *RegistrationService {
	return &RegistrationService{
		tx:            tx,
		students:      students,
		registrations: registrations,
		listing:       listing,
	}
}

// Register persists one validated submission: upsert the student by DNI,
// then one registration row per selected subject, all sharing the same
// program, year and cohort. No idempotency beyond the student upsert:
// resubmitting the same selections appends duplicate registration rows.
func (s *RegistrationService) Register(ctx context.Context, req *dto.CreateRegistrationRequest) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		student := req.Alumno.Student()
		if err := s.students.UpsertTx(ctx, tx, student); err != nil {
			return err
		}

		for _, selection := range req.Inscripciones {
			registration := &models.Registration{
				StudentID: student.ID,
				ProgramID: req.Academico.IDCarrera,
				YearID:    req.Academico.IDAnio,
				SubjectID: selection.IDMateria,
				Cohort:    req.Academico.Cohorte,
				Condition: selection.Condicion,
			}
			if err := s.registrations.CreateTx(ctx, tx, registration); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return mapRegistrationError(err)
	}

	return nil
}

// GetRegistrations retrieves every registration joined with student, program,
// year and subject, newest first
func (s *RegistrationService) GetRegistrations(ctx context.Context) ([]models.RegistrationDetail, error) {
	details, err := s.listing.GetAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}
	return details, nil
}

// mapRegistrationError turns known constraint violations into client errors.
// The composite FK fires when a subject does not belong to the stated program
// and year; the check constraints guard condicion and the cohort lower bound.
func mapRegistrationError(err error) error {
	switch {
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewCustomError(apperrors.ErrSubjectNotInPlan,
			"one of the selected subjects does not belong to the given program and year")
	case dberrors.IsCheckViolation(err):
		return apperrors.NewCustomError(apperrors.ErrRegistrationRejected,
			fmt.Sprintf("submission violates constraint %s", dberrors.ConstraintName(err)))
	default:
		return fmt.Errorf("error persisting registration: %w", err)
	}
}
