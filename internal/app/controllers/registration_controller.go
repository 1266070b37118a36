package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/app/models/dto"
	"github.com/avaldez/inscripciones/internal/middleware"
)

// RegistrationService is the write side plus listing consumed by this controller
type RegistrationService interface {
	Register(ctx context.Context, req *dto.CreateRegistrationRequest) error
	GetRegistrations(ctx context.Context) ([]models.RegistrationDetail, error)
}

// RegistrationController handles exam registration submissions and the
// dashboard listing
type RegistrationController struct {
	registrationService RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Create accepts one submission from the wizard's review step, validates it
// and persists the student plus one registration row per selected subject.
// Nothing is persisted on a validation failure.
func (c *RegistrationController) Create(ctx *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if verrs := req.Validate(time.Now()); verrs.HasErrors() {
		c.logger.Warn().Int("cohorte", req.Academico.Cohorte).Msg("Registration payload failed business validation")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(verrs.ToErrorDetail()))
		return
	}

	if err := c.registrationService.Register(ctx.Request.Context(), &req); err != nil {
		c.logger.Error().Err(err).Str("dni", req.Alumno.DNI).Msg("Failed to persist registration")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("dni", req.Alumno.DNI).
		Int64("idCarrera", req.Academico.IDCarrera).
		Int("materias", len(req.Inscripciones)).
		Msg("Registration persisted")

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Inscripción realizada con éxito",
	})
}

// GetAll lists every registration joined with student, program, year and
// subject, newest first. Filtering and export happen client-side.
func (c *RegistrationController) GetAll(ctx *gin.Context) {
	details, err := c.registrationService.GetRegistrations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if details == nil {
		details = []models.RegistrationDetail{}
	}

	ctx.JSON(http.StatusOK, details)
}
