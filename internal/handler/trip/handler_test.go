package trip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/records-api/internal/model"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListTrips(ctx context.Context) ([]model.Trip, error) {
	args := m.Called(ctx)
	trips, _ := args.Get(0).([]model.Trip)
	return trips, args.Error(1)
}

func get(svc *mockService) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips", nil))
	return w
}

func TestListTrips(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("ListTrips", mock.Anything).Return([]model.Trip{{
		ID: 1, Name: "Rome", Description: "City break", DateFrom: day, DateTo: day, MaxPeople: 20,
		Countries: []model.Country{{ID: 3, Name: "Italy"}},
	}}, nil)

	w := get(svc)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id": 1, "name": "Rome", "description": "City break",
		"dateFrom": "2024-06-01T00:00:00Z", "dateTo": "2024-06-01T00:00:00Z", "maxPeople": 20,
		"countries": [{"id": 3, "name": "Italy"}]
	}]`, w.Body.String())
}

func TestListTrips_Failure(t *testing.T) {
	svc := &mockService{}
	svc.On("ListTrips", mock.Anything).Return(nil, apperrors.NewInternal(errors.New("timeout")))

	w := get(svc)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error: timeout")
}
