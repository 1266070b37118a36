package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/pkg/apperrors"
)

type fakeCatalogService struct {
	programs []models.Program
	years    []models.AcademicYear
	subjects []models.Subject
	err      error

	subjectCalls int
}

func (f *fakeCatalogService) GetPrograms(context.Context) ([]models.Program, error) {
	return f.programs, f.err
}

func (f *fakeCatalogService) GetAcademicYears(context.Context) ([]models.AcademicYear, error) {
	return f.years, f.err
}

func (f *fakeCatalogService) GetSubjects(_ context.Context, programID, yearID int64) ([]models.Subject, error) {
	f.subjectCalls++
	if programID <= 0 || yearID <= 0 {
		return nil, apperrors.NewBadRequestError("invalid id")
	}
	return f.subjects, f.err
}

func catalogRouter(svc *fakeCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCatalogController(svc)
	router.GET("/api/carreras", controller.GetPrograms)
	router.GET("/api/anios", controller.GetAcademicYears)
	router.GET("/api/materias", controller.GetSubjects)
	return router
}

func TestGetProgramsReturnsArray(t *testing.T) {
	router := catalogRouter(&fakeCatalogService{programs: []models.Program{
		{ID: 1, Name: "Producción de Multimedios", Description: "Tecnicatura Superior en Producción de Multimedios"},
		{ID: 2, Name: "Logística", Description: "Tecnicatura Superior en Logística"},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/carreras", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Program
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Producción de Multimedios", got[0].Name)
}

func TestGetProgramsEmptyIsArrayNotNull(t *testing.T) {
	router := catalogRouter(&fakeCatalogService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/carreras", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProgramsStoreError(t *testing.T) {
	router := catalogRouter(&fakeCatalogService{err: errors.New("store unavailable")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/carreras", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAcademicYears(t *testing.T) {
	router := catalogRouter(&fakeCatalogService{years: []models.AcademicYear{
		{ID: 1, Name: "1er Año", Rank: 1},
		{ID: 2, Name: "2do Año", Rank: 2},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/anios", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.AcademicYear
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "1er Año", got[0].Name)
}

func TestGetSubjectsMissingParams(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantFields int
	}{
		{"both missing", "/api/materias", 2},
		{"missing year", "/api/materias?id_carrera=1", 1},
		{"missing program", "/api/materias?id_anio=1", 1},
		{"non numeric program", "/api/materias?id_carrera=abc&id_anio=1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCatalogService{}
			router := catalogRouter(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, http.StatusBadRequest, w.Code)

			var body struct {
				Error struct {
					Details []struct {
						Field   string `json:"field"`
						Message string `json:"message"`
					} `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Len(t, body.Error.Details, tt.wantFields)

			// The store is never touched on a parameter error
			assert.Equal(t, 0, svc.subjectCalls)
		})
	}
}

func TestGetSubjects(t *testing.T) {
	router := catalogRouter(&fakeCatalogService{subjects: []models.Subject{
		{ID: 3, Name: "Física", ProgramID: 2, YearID: 1},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/materias?id_carrera=2&id_anio=1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Subject
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}
