package models

import "time"

// Registration represents one exam registration row. Immutable once created;
// there is no update or delete path.
type Registration struct {
	ID        int64     `json:"id_inscripcion" db:"id_inscripcion"`
	StudentID int64     `json:"id_estudiante" db:"id_estudiante"`
	ProgramID int64     `json:"id_carrera" db:"id_carrera"`
	YearID    int64     `json:"id_anio" db:"id_anio"`
	SubjectID int64     `json:"id_materia" db:"id_materia"`
	Cohort    int       `json:"cohorte" db:"cohorte"`
	Condition Condition `json:"condicion" db:"condicion"`
	CreatedAt time.Time `json:"fecha_inscripcion" db:"fecha_inscripcion"`
}

// RegistrationDetail is the joined row served to the admin dashboard:
// one registration with its student, program, year and subject resolved.
type RegistrationDetail struct {
	ID          int64     `json:"id_inscripcion"`
	CreatedAt   time.Time `json:"fecha_inscripcion"`
	Cohort      int       `json:"cohorte"`
	Condition   Condition `json:"condicion"`
	DNI         string    `json:"dni"`
	Surname     string    `json:"apellido"`
	StudentName string    `json:"nombre_alumno"`
	Email       string    `json:"email"`
	Program     string    `json:"carrera"`
	Year        string    `json:"anio_cursada"`
	Subject     string    `json:"materia"`
}
