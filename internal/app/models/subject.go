package models

// Subject represents a subject ("materia") taught in exactly one
// (program, academic year) pair. The (id_carrera, id_anio, id_materia)
// uniqueness exists to back the composite foreign key from registrations.
type Subject struct {
	ID        int64  `json:"id_materia" db:"id_materia"`
	Name      string `json:"nombre" db:"nombre"`
	ProgramID int64  `json:"id_carrera" db:"id_carrera"`
	YearID    int64  `json:"id_anio" db:"id_anio"`
}
