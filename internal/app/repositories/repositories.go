package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProgramRepository      *ProgramRepository
	AcademicYearRepository *AcademicYearRepository
	SubjectRepository      *SubjectRepository
	StudentRepository      *StudentRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProgramRepository:      NewProgramRepository(db),
		AcademicYearRepository: NewAcademicYearRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		StudentRepository:      NewStudentRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}
