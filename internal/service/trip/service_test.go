package trip

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository/mocks"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
)

func TestListTrips_AttachesCountries(t *testing.T) {
	repo := &mocks.TripRepository{}
	repo.On("List", mock.Anything).Return([]model.Trip{{ID: 1, Name: "Rome"}, {ID: 2, Name: "Alps"}}, nil)
	repo.On("ListCountries", mock.Anything, 1).Return([]model.Country{{ID: 10, Name: "Italy"}}, nil)
	repo.On("ListCountries", mock.Anything, 2).Return(nil, nil)

	trips, err := NewService(repo).ListTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, []model.Country{{ID: 10, Name: "Italy"}}, trips[0].Countries)
	assert.NotNil(t, trips[1].Countries)
	assert.Empty(t, trips[1].Countries)
	repo.AssertExpectations(t)
}

func TestListTrips_Empty(t *testing.T) {
	repo := &mocks.TripRepository{}
	repo.On("List", mock.Anything).Return(nil, nil)

	trips, err := NewService(repo).ListTrips(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestListTrips_StoreFailure(t *testing.T) {
	repo := &mocks.TripRepository{}
	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := NewService(repo).ListTrips(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInternal))
	assert.Contains(t, err.Error(), "Internal server error: connection refused")
}
