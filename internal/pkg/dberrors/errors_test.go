package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		unique  bool
		fk      bool
		check   bool
	}{
		{"unique violation", pgError("23505", "estudiantes_dni_key"), true, false, false},
		{"foreign key violation", pgError("23503", "inscripciones_examenes_id_carrera_id_anio_id_materia_fkey"), false, true, false},
		{"check violation", pgError("23514", "inscripciones_examenes_condicion_check"), false, false, true},
		{"unrelated pg error", pgError("42P01", ""), false, false, false},
		{"plain error", errors.New("connection refused"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.fk, IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.check, IsCheckViolation(tt.err))
		})
	}
}

func TestClassifiersUnwrapWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("inserting registration: %w", pgError("23503", "fk"))
	assert.True(t, IsForeignKeyViolation(wrapped))
	assert.Equal(t, "fk", ConstraintName(wrapped))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := pgError("23505", "estudiantes_dni_key")
	assert.True(t, IsDuplicateConstraintError(err, "estudiantes_dni_key"))
	assert.False(t, IsDuplicateConstraintError(err, "carreras_nombre_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("x"), "estudiantes_dni_key"))
}

func TestConstraintNameNonPgError(t *testing.T) {
	assert.Equal(t, "", ConstraintName(errors.New("not a pg error")))
}
