package dto

import (
	"fmt"
	"time"

	"github.com/avaldez/inscripciones/internal/app/models"
)

// StudentPayload carries the applicant identity from the wizard's first step
type StudentPayload struct {
	DNI      string `json:"dni" binding:"required,min=6"`
	Apellido string `json:"apellido" binding:"required,min=2"`
	Nombre   string `json:"nombre" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
}

// AcademicPayload pins the program, year and cohort shared by all selections
type AcademicPayload struct {
	IDCarrera int64 `json:"id_carrera" binding:"required,min=1"`
	IDAnio    int64 `json:"id_anio" binding:"required,min=1"`
	Cohorte   int   `json:"cohorte" binding:"required,min=2000"`
}

// SelectionPayload is one subject the applicant registers for
type SelectionPayload struct {
	IDMateria int64            `json:"id_materia" binding:"required,min=1"`
	Condicion models.Condition `json:"condicion" binding:"required,oneof=regular libre"`
}

// CreateRegistrationRequest is the full submission posted by the wizard's
// review step. The binding tags mirror the accepted shape; the server-side
// cap of 3 selections matches the client UI.
type CreateRegistrationRequest struct {
	Alumno        StudentPayload     `json:"alumno" binding:"required"`
	Academico     AcademicPayload    `json:"academico" binding:"required"`
	Inscripciones []SelectionPayload `json:"inscripciones" binding:"required,min=1,max=3,dive"`
}

// Validate applies the business rules that binding tags cannot express.
// The cohort upper bound moves with the calendar, so it is checked against
// the supplied clock rather than a static tag.
func (r *CreateRegistrationRequest) Validate(now time.Time) *ValidationErrors {
	verrs := NewValidationErrors()

	currentYear := now.Year()
	if r.Academico.Cohorte > currentYear {
		verrs.AddError("cohorte", fmt.Sprintf("cohorte must be between %d and %d", models.MinCohort, currentYear))
	}

	// Re-checked here so submissions built in code get the same guarantee
	// as bound JSON
	for i, selection := range r.Inscripciones {
		if !selection.Condicion.Valid() {
			verrs.AddError(
				fmt.Sprintf("inscripciones[%d].condicion", i),
				fmt.Sprintf("condicion must be one of: %s %s", models.ConditionRegular, models.ConditionLibre),
			)
		}
	}

	return verrs
}

// Student converts the payload to the domain model
func (p *StudentPayload) Student() *models.Student {
	return &models.Student{
		DNI:     p.DNI,
		Surname: p.Apellido,
		Name:    p.Nombre,
		Email:   p.Email,
	}
}
