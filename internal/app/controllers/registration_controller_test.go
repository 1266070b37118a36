package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaldez/inscripciones/internal/app/models"
	"github.com/avaldez/inscripciones/internal/app/models/dto"
	"github.com/avaldez/inscripciones/internal/pkg/apperrors"
)

type fakeRegistrationService struct {
	registerErr error
	listed      []models.RegistrationDetail
	listErr     error

	received *dto.CreateRegistrationRequest
}

func (f *fakeRegistrationService) Register(_ context.Context, req *dto.CreateRegistrationRequest) error {
	f.received = req
	return f.registerErr
}

func (f *fakeRegistrationService) GetRegistrations(context.Context) ([]models.RegistrationDetail, error) {
	return f.listed, f.listErr
}

func registrationRouter(svc *fakeRegistrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewRegistrationController(svc, zerolog.Nop())
	router.POST("/api/inscripciones", controller.Create)
	router.GET("/api/inscripciones", controller.GetAll)
	return router
}

func validSubmission() map[string]interface{} {
	return map[string]interface{}{
		"alumno": map[string]interface{}{
			"dni":      "12345678",
			"apellido": "Gómez",
			"nombre":   "Ana",
			"email":    "ana.gomez@example.com",
		},
		"academico": map[string]interface{}{
			"id_carrera": 1,
			"id_anio":    1,
			"cohorte":    2024,
		},
		"inscripciones": []map[string]interface{}{
			{"id_materia": 3, "condicion": "regular"},
			{"id_materia": 5, "condicion": "libre"},
		},
	}
}

func postJSON(router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/inscripciones", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRegistration(t *testing.T) {
	svc := &fakeRegistrationService{}
	router := registrationRouter(svc)

	w := postJSON(router, validSubmission())

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Inscripción realizada con éxito", resp.Message)

	require.NotNil(t, svc.received)
	assert.Equal(t, "12345678", svc.received.Alumno.DNI)
	assert.Len(t, svc.received.Inscripciones, 2)
}

func TestCreateRegistrationMalformedJSON(t *testing.T) {
	svc := &fakeRegistrationService{}
	router := registrationRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/inscripciones", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.received)
}

func TestCreateRegistrationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(payload map[string]interface{})
	}{
		{"short dni", func(p map[string]interface{}) {
			p["alumno"].(map[string]interface{})["dni"] = "123"
		}},
		{"bad email", func(p map[string]interface{}) {
			p["alumno"].(map[string]interface{})["email"] = "not-an-email"
		}},
		{"cohort before 2000", func(p map[string]interface{}) {
			p["academico"].(map[string]interface{})["cohorte"] = 1999
		}},
		{"no selections", func(p map[string]interface{}) {
			p["inscripciones"] = []map[string]interface{}{}
		}},
		{"more than three selections", func(p map[string]interface{}) {
			p["inscripciones"] = []map[string]interface{}{
				{"id_materia": 1, "condicion": "regular"},
				{"id_materia": 2, "condicion": "regular"},
				{"id_materia": 3, "condicion": "regular"},
				{"id_materia": 4, "condicion": "regular"},
			}
		}},
		{"unknown condition", func(p map[string]interface{}) {
			p["inscripciones"] = []map[string]interface{}{
				{"id_materia": 1, "condicion": "oyente"},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRegistrationService{}
			router := registrationRouter(svc)

			payload := validSubmission()
			tt.mutate(payload)
			w := postJSON(router, payload)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, svc.received)
		})
	}
}

func TestCreateRegistrationFutureCohort(t *testing.T) {
	svc := &fakeRegistrationService{}
	router := registrationRouter(svc)

	payload := validSubmission()
	payload["academico"].(map[string]interface{})["cohorte"] = time.Now().Year() + 1
	w := postJSON(router, payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.received)

	var body struct {
		Error struct {
			Details []dto.FieldError `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "cohorte", body.Error.Details[0].Field)
}

func TestCreateRegistrationSubjectNotInPlan(t *testing.T) {
	svc := &fakeRegistrationService{
		registerErr: apperrors.NewCustomError(apperrors.ErrSubjectNotInPlan, "selected subject does not belong to the chosen program and year"),
	}
	router := registrationRouter(svc)

	w := postJSON(router, validSubmission())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRegistrationStoreFailure(t *testing.T) {
	svc := &fakeRegistrationService{registerErr: errors.New("connection reset")}
	router := registrationRouter(svc)

	w := postJSON(router, validSubmission())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAllRegistrations(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	svc := &fakeRegistrationService{listed: []models.RegistrationDetail{
		{
			ID:          2,
			CreatedAt:   now,
			Cohort:      2024,
			Condition:   models.ConditionRegular,
			DNI:         "12345678",
			Surname:     "Gómez",
			StudentName: "Ana",
			Email:       "ana.gomez@example.com",
			Program:     "Logística",
			Year:        "1er Año",
			Subject:     "Matemática",
		},
		{ID: 1, CreatedAt: now.Add(-time.Hour), Cohort: 2023, Condition: models.ConditionLibre},
	}}
	router := registrationRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inscripciones", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)

	// Wire format keeps the dashboard's column aliases
	assert.Equal(t, "Ana", got[0]["nombre_alumno"])
	assert.Equal(t, "Logística", got[0]["carrera"])
	assert.Equal(t, "1er Año", got[0]["anio_cursada"])
	assert.Equal(t, "Matemática", got[0]["materia"])
	assert.Equal(t, 2024, int(got[0]["cohorte"].(float64)))
}

func TestGetAllRegistrationsEmptyIsArray(t *testing.T) {
	router := registrationRouter(&fakeRegistrationService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inscripciones", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetAllRegistrationsStoreFailure(t *testing.T) {
	router := registrationRouter(&fakeRegistrationService{listErr: errors.New("store unavailable")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inscripciones", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
