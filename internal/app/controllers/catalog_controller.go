package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/app/models/dto"
	"github.com/avaldez/inscripciones/internal/middleware"
)

// CatalogService is the read side consumed by this controller
type CatalogService interface {
	GetPrograms(ctx context.Context) ([]models.Program, error)
	GetAcademicYears(ctx context.Context) ([]models.AcademicYear, error)
	GetSubjects(ctx context.Context, programID, yearID int64) ([]models.Subject, error)
}

// CatalogController serves the reference data endpoints used by the wizard
type CatalogController struct {
	catalogService CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetPrograms lists all programs in natural order
func (c *CatalogController) GetPrograms(ctx *gin.Context) {
	programs, err := c.catalogService.GetPrograms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if programs == nil {
		programs = []models.Program{}
	}

	ctx.JSON(http.StatusOK, programs)
}

// GetAcademicYears lists all academic years ordered by rank
func (c *CatalogController) GetAcademicYears(ctx *gin.Context) {
	years, err := c.catalogService.GetAcademicYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if years == nil {
		years = []models.AcademicYear{}
	}

	ctx.JSON(http.StatusOK, years)
}

// GetSubjects lists the subjects for one program and year. Both query
// parameters are mandatory; the rejection enumerates whichever are missing
// or malformed before any storage access.
func (c *CatalogController) GetSubjects(ctx *gin.Context) {
	verrs := dto.NewValidationErrors()
	programID := parseQueryID(ctx, "id_carrera", verrs)
	yearID := parseQueryID(ctx, "id_anio", verrs)
	if verrs.HasErrors() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(verrs.ToErrorDetail()))
		return
	}

	subjects, err := c.catalogService.GetSubjects(ctx.Request.Context(), programID, yearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}

	ctx.JSON(http.StatusOK, subjects)
}

// parseQueryID reads one mandatory numeric query parameter, collecting a
// field error when it is absent or not a number
func parseQueryID(ctx *gin.Context, name string, verrs *dto.ValidationErrors) int64 {
	raw := ctx.Query(name)
	if raw == "" {
		verrs.AddError(name, name+" is required")
		return 0
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verrs.AddError(name, name+" must be a valid number")
		return 0
	}

	return id
}
