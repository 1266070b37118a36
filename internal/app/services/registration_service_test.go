package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/app/models/dto"
	"github.com/avaldez/inscripciones/internal/db"
	"github.com/avaldez/inscripciones/internal/pkg/apperrors"
)

// fakeTxRunner mimics WithTransaction: the callback's error aborts the
// transaction and is returned unchanged.
type fakeTxRunner struct {
	rolledBack bool
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if err := fn(ctx, nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fakeStudentWriter struct {
	upserts []models.Student
	nextID  int64
	err     error
}

func (f *fakeStudentWriter) UpsertTx(_ context.Context, _ pgx.Tx, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, *student)
	student.ID = f.nextID
	return nil
}

type fakeRegistrationWriter struct {
	inserted  []models.Registration
	failAfter int // fail on insert number failAfter+1; -1 never fails
	err       error
}

func (f *fakeRegistrationWriter) CreateTx(_ context.Context, _ pgx.Tx, registration *models.Registration) error {
	if f.failAfter >= 0 && len(f.inserted) == f.failAfter {
		return f.err
	}
	registration.ID = int64(len(f.inserted) + 1)
	registration.CreatedAt = time.Now()
	f.inserted = append(f.inserted, *registration)
	return nil
}

type fakeRegistrationLister struct {
	details []models.RegistrationDetail
	err     error
}

func (f *fakeRegistrationLister) GetAllDetailed(context.Context) ([]models.RegistrationDetail, error) {
	return f.details, f.err
}

func submission(selections ...dto.SelectionPayload) *dto.CreateRegistrationRequest {
	return &dto.CreateRegistrationRequest{
		Alumno: dto.StudentPayload{
			DNI:      "12345678",
			Apellido: "Gómez",
			Nombre:   "Ana",
			Email:    "ana@x.com",
		},
		Academico: dto.AcademicPayload{
			IDCarrera: 1,
			IDAnio:    1,
			Cohorte:   2024,
		},
		Inscripciones: selections,
	}
}

func TestRegisterPersistsOneRowPerSelection(t *testing.T) {
	tx := &fakeTxRunner{}
	students := &fakeStudentWriter{nextID: 42}
	registrations := &fakeRegistrationWriter{failAfter: -1}
	svc := NewRegistrationService(tx, students, registrations, &fakeRegistrationLister{})

	req := submission(
		dto.SelectionPayload{IDMateria: 3, Condicion: models.ConditionRegular},
		dto.SelectionPayload{IDMateria: 5, Condicion: models.ConditionLibre},
	)

	require.NoError(t, svc.Register(context.Background(), req))

	require.Len(t, students.upserts, 1)
	assert.Equal(t, "12345678", students.upserts[0].DNI)

	require.Len(t, registrations.inserted, 2)
	for _, row := range registrations.inserted {
		assert.Equal(t, int64(42), row.StudentID)
		assert.Equal(t, int64(1), row.ProgramID)
		assert.Equal(t, int64(1), row.YearID)
		assert.Equal(t, 2024, row.Cohort)
	}
	assert.Equal(t, int64(3), registrations.inserted[0].SubjectID)
	assert.Equal(t, models.ConditionRegular, registrations.inserted[0].Condition)
	assert.Equal(t, int64(5), registrations.inserted[1].SubjectID)
	assert.Equal(t, models.ConditionLibre, registrations.inserted[1].Condition)

	assert.False(t, tx.rolledBack)
}

func TestRegisterForeignKeyViolationAbortsWholeSubmission(t *testing.T) {
	tx := &fakeTxRunner{}
	students := &fakeStudentWriter{nextID: 7}
	// The second insert trips the composite FK to materias; the transaction
	// aborts, so the first row never commits either.
	registrations := &fakeRegistrationWriter{
		failAfter: 1,
		err:       &pgconn.PgError{Code: "23503", ConstraintName: "inscripciones_examenes_id_carrera_id_anio_id_materia_fkey"},
	}
	svc := NewRegistrationService(tx, students, registrations, &fakeRegistrationLister{})

	req := submission(
		dto.SelectionPayload{IDMateria: 3, Condicion: models.ConditionRegular},
		dto.SelectionPayload{IDMateria: 999, Condicion: models.ConditionRegular},
	)

	err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotInPlan)
	assert.True(t, tx.rolledBack)
}

func TestRegisterCheckViolationMapped(t *testing.T) {
	tx := &fakeTxRunner{}
	students := &fakeStudentWriter{nextID: 7}
	registrations := &fakeRegistrationWriter{
		failAfter: 0,
		err:       &pgconn.PgError{Code: "23514", ConstraintName: "inscripciones_examenes_condicion_check"},
	}
	svc := NewRegistrationService(tx, students, registrations, &fakeRegistrationLister{})

	err := svc.Register(context.Background(), submission(dto.SelectionPayload{IDMateria: 3, Condicion: models.ConditionRegular}))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationRejected)
	assert.Contains(t, err.Error(), "inscripciones_examenes_condicion_check")
}

func TestRegisterStudentUpsertFailureStopsBeforeInserts(t *testing.T) {
	tx := &fakeTxRunner{}
	students := &fakeStudentWriter{err: errors.New("connection reset")}
	registrations := &fakeRegistrationWriter{failAfter: -1}
	svc := NewRegistrationService(tx, students, registrations, &fakeRegistrationLister{})

	err := svc.Register(context.Background(), submission(dto.SelectionPayload{IDMateria: 3, Condicion: models.ConditionRegular}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSubjectNotInPlan)
	assert.Empty(t, registrations.inserted)
	assert.True(t, tx.rolledBack)
}

func TestGetRegistrations(t *testing.T) {
	want := []models.RegistrationDetail{
		{ID: 2, DNI: "12345678", Subject: "Física", Condition: models.ConditionRegular},
		{ID: 1, DNI: "87654321", Subject: "Química", Condition: models.ConditionLibre},
	}
	svc := NewRegistrationService(&fakeTxRunner{}, &fakeStudentWriter{}, &fakeRegistrationWriter{failAfter: -1}, &fakeRegistrationLister{details: want})

	got, err := svc.GetRegistrations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetRegistrationsError(t *testing.T) {
	svc := NewRegistrationService(&fakeTxRunner{}, &fakeStudentWriter{}, &fakeRegistrationWriter{failAfter: -1}, &fakeRegistrationLister{err: errors.New("down")})

	_, err := svc.GetRegistrations(context.Background())
	assert.Error(t, err)
}
