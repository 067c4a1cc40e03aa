package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/records-api/internal/model"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
	"github.com/jwalitptl/records-api/pkg/httputil"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*model.Client)
	return c, args.Error(1)
}

func (m *mockService) ListClientTrips(ctx context.Context, clientID int) ([]model.ClientTrip, error) {
	args := m.Called(ctx, clientID)
	trips, _ := args.Get(0).([]model.ClientTrip)
	return trips, args.Error(1)
}

func (m *mockService) RegisterForTrip(ctx context.Context, clientID, tripID int) (*model.Registration, error) {
	args := m.Called(ctx, clientID, tripID)
	reg, _ := args.Get(0).(*model.Registration)
	return reg, args.Error(1)
}

func (m *mockService) UnregisterFromTrip(ctx context.Context, clientID, tripID int) error {
	return m.Called(ctx, clientID, tripID).Error(0)
}

func setup(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api"))
	return engine
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateClient(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateClient", mock.Anything, mock.MatchedBy(func(r *model.CreateClientRequest) bool {
		return r.FirstName == "Jan" && r.Email == "jan@example.com"
	})).Return(&model.Client{ID: 42}, nil)

	w := do(setup(svc), http.MethodPost, "/api/clients",
		`{"firstName":"Jan","lastName":"Nowak","email":"jan@example.com","telephone":"123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/clients/42", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
}

func TestCreateClient_ValidationError(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateClient", mock.Anything, mock.Anything).Return(nil, apperrors.NewValidation("Invalid email format"))

	w := do(setup(svc), http.MethodPost, "/api/clients", `{"firstName":"Jan","lastName":"Nowak","email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid email format", resp.Message)
}

func TestCreateClient_MalformedJSON(t *testing.T) {
	svc := &mockService{}
	w := do(setup(svc), http.MethodPost, "/api/clients", `{"firstName":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateClient", mock.Anything, mock.Anything)
}

func TestListClientTrips(t *testing.T) {
	svc := &mockService{}
	svc.On("ListClientTrips", mock.Anything, 7).Return([]model.ClientTrip{
		{Trip: model.Trip{ID: 1, Name: "Rome", Countries: []model.Country{{ID: 2, Name: "Italy"}}}, RegisteredAt: 20240107},
	}, nil)
	svc.On("ListClientTrips", mock.Anything, 8).Return(nil, apperrors.NotFoundf("Client with ID %d not found", 8))
	engine := setup(svc)

	w := do(engine, http.MethodGet, "/api/clients/7/trips", "")
	require.Equal(t, http.StatusOK, w.Code)
	var trips []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trips))
	require.Len(t, trips, 1)
	assert.EqualValues(t, 20240107, trips[0]["registeredAt"])
	assert.Nil(t, trips[0]["paymentDate"])
	assert.Len(t, trips[0]["countries"], 1)

	w = do(engine, http.MethodGet, "/api/clients/8/trips", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Client with ID 8 not found", decodeError(t, w).Message)
}

func TestListClientTrips_NonNumericID(t *testing.T) {
	svc := &mockService{}
	w := do(setup(svc), http.MethodGet, "/api/clients/abc/trips", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListClientTrips", mock.Anything, mock.Anything)
}

func TestRegisterForTrip(t *testing.T) {
	svc := &mockService{}
	svc.On("RegisterForTrip", mock.Anything, 1, 2).Return(&model.Registration{ClientID: 1, TripID: 2}, nil)
	svc.On("RegisterForTrip", mock.Anything, 1, 3).Return(nil, apperrors.NewCapacityExceeded("Trip has maximum number of participants"))
	engine := setup(svc)

	w := do(engine, http.MethodPut, "/api/clients/1/trips/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Client successfully registered for trip", w.Body.String())

	w = do(engine, http.MethodPut, "/api/clients/1/trips/3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Trip has maximum number of participants", decodeError(t, w).Message)

	w = do(engine, http.MethodPut, "/api/clients/1/trips/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnregisterFromTrip(t *testing.T) {
	svc := &mockService{}
	svc.On("UnregisterFromTrip", mock.Anything, 1, 2).Return(nil)
	svc.On("UnregisterFromTrip", mock.Anything, 1, 9).Return(apperrors.NewNotFound("Client is not registered for this trip", nil))
	engine := setup(svc)

	w := do(engine, http.MethodDelete, "/api/clients/1/trips/2", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(engine, http.MethodDelete, "/api/clients/1/trips/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Client is not registered for this trip", decodeError(t, w).Message)
}
