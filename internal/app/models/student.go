package models

// Student defines the applicant identity, keyed by national identity number
// (DNI). Rows are upserted on every submission, last submission wins for the
// name and email fields, and are never deleted.
type Student struct {
	ID       int64  `json:"id_estudiante" db:"id_estudiante"`
	DNI      string `json:"dni" db:"dni"`
	Surname  string `json:"apellido" db:"apellido"`
	Name     string `json:"nombre" db:"nombre"`
	Email    string `json:"email" db:"email"`
}
