package models

// Program represents a degree program ("carrera"). Reference data, seeded
// once and rarely changed.
type Program struct {
	ID          int64  `json:"id_carrera" db:"id_carrera"`
	Name        string `json:"nombre" db:"nombre"`
	Description string `json:"descripcion" db:"descripcion"`
}
