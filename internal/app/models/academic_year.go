package models

// AcademicYear represents a year of study within a program ("año de cursada").
// Rank drives the display order of the catalog.
type AcademicYear struct {
	ID   int64  `json:"id_anio" db:"id_anio"`
	Name string `json:"nombre" db:"nombre"`
	Rank int    `json:"orden" db:"orden"`
}
