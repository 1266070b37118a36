package services

import (
	"context"
	"fmt"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/pkg/apperrors"
)

// ProgramLister lists the program catalog
type ProgramLister interface {
	GetAll(ctx context.Context) ([]models.Program, error)
}

// AcademicYearLister lists the academic year catalog
type AcademicYearLister interface {
	GetAll(ctx context.Context) ([]models.AcademicYear, error)
}

// SubjectLister lists subjects for one (program, year) pair
type SubjectLister interface {
	GetByProgramAndYear(ctx context.Context, programID, yearID int64) ([]models.Subject, error)
}

// CatalogService serves the read-mostly reference data behind the wizard's
// selection steps
type CatalogService struct {
	programs ProgramLister
	years    AcademicYearLister
	subjects SubjectLister
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(programs ProgramLister, years AcademicYearLister, subjects SubjectLister) *CatalogService {
	return &CatalogService{
		programs: programs,
		years:    years,
		subjects: subjects,
	}
}

// GetPrograms retrieves all programs in natural order
func (s *CatalogService) GetPrograms(ctx context.Context) ([]models.Program, error) {
	programs, err := s.programs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// GetAcademicYears retrieves all academic years ordered by rank
func (s *CatalogService) GetAcademicYears(ctx context.Context) ([]models.AcademicYear, error) {
	years, err := s.years.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic years: %w", err)
	}
	return years, nil
}

// GetSubjects retrieves the subjects for one program and year. Both ids are
// mandatory; a non-positive id is a client error.
func (s *CatalogService) GetSubjects(ctx context.Context, programID, yearID int64) ([]models.Subject, error) {
	if programID <= 0 {
		return nil, apperrors.NewBadRequestError("id_carrera must be a positive number")
	}
	if yearID <= 0 {
		return nil, apperrors.NewBadRequestError("id_anio must be a positive number")
	}

	subjects, err := s.subjects.GetByProgramAndYear(ctx, programID, yearID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}
