package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaldez/inscripciones/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	registrationController *controllers.RegistrationController,
) {
	// Landing banner for anyone hitting the API root directly
	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "API Formulario Inscripción Exámenes")
	})

	api := router.Group("/api")

	// --- Catalog routes (wizard reference data) ---
	api.GET("/carreras", catalogController.GetPrograms)
	api.GET("/anios", catalogController.GetAcademicYears)
	api.GET("/materias", catalogController.GetSubjects)

	// --- Registration routes ---
	api.POST("/inscripciones", registrationController.Create)
	api.GET("/inscripciones", registrationController.GetAll)

	// Liveness probe
	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
