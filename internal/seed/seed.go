// Package seed loads the institute's study plan into the catalog tables.
// Every insert is an upsert keyed on the natural unique columns, so running
// it repeatedly is safe and catalog edits converge on restart.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/app/repositories"
)

// CreateDefaultData seeds the programs, academic years and subjects the
// registration wizard offers
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	programRepo := repositories.NewProgramRepository(dbPool)
	yearRepo := repositories.NewAcademicYearRepository(dbPool)
	subjectRepo := repositories.NewSubjectRepository(dbPool)

	lgr.Info().Msg("Checking/Creating catalog data (programs/years/subjects)...")

	// Years first, the subjects reference them by resolved id
	yearIDs := make(map[int]int64, len(academicYears))
	for _, entry := range academicYears {
		year := &models.AcademicYear{Name: entry.name, Rank: entry.rank}
		if err := yearRepo.Upsert(ctx, year); err != nil {
			return fmt.Errorf("seeding academic year %q: %w", entry.name, err)
		}
		yearIDs[entry.rank] = year.ID
	}

	subjectCount := 0
	for _, entry := range catalog {
		program := &models.Program{Name: entry.name, Description: entry.description}
		if err := programRepo.Upsert(ctx, program); err != nil {
			return fmt.Errorf("seeding program %q: %w", entry.name, err)
		}

		for _, yearEntry := range academicYears {
			for _, name := range entry.subjects[yearEntry.rank] {
				subject := &models.Subject{
					Name:      name,
					ProgramID: program.ID,
					YearID:    yearIDs[yearEntry.rank],
				}
				if err := subjectRepo.Upsert(ctx, subject); err != nil {
					return fmt.Errorf("seeding subject %q for program %q: %w", name, entry.name, err)
				}
				subjectCount++
			}
		}
	}

	lgr.Info().
		Int("programs", len(catalog)).
		Int("years", len(academicYears)).
		Int("subjects", subjectCount).
		Msg("Catalog data ready")

	return nil
}
