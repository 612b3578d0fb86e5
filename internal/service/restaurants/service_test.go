package restaurants

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

type fakeRestaurantRepo struct {
	restaurant       *domain.Restaurant
	categories       []*domain.Category
	dayIndexes       []int
	averageScore     *float64
	reservationCount int64
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	if f.restaurant == nil {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return f.restaurant, nil
}

func (f *fakeRestaurantRepo) AverageScore(_ context.Context, _ int64) (*float64, error) {
	return f.averageScore, nil
}

func (f *fakeRestaurantRepo) ReservationCount(_ context.Context, _ int64) (int64, error) {
	return f.reservationCount, nil
}

func (f *fakeRestaurantRepo) DayIndexes(_ context.Context, _ int64) ([]int, error) {
	return f.dayIndexes, nil
}

func (f *fakeRestaurantRepo) Categories(_ context.Context, _ int64) ([]*domain.Category, error) {
	return f.categories, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	// Понедельник, 13 октября 2025, 15:30
	testNow       = time.Date(2025, 10, 13, 15, 30, 0, 0, time.UTC)
	testReference = domain.Coordinates{Latitude: 35.170915, Longitude: 136.881537}
)

func newTestService(repo *fakeRestaurantRepo) *Service {
	svc := NewService(repo, testReference, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func testRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:              1,
		Name:            "Суши у вокзала",
		Address:         "Нагоя, Накамура",
		Latitude:        ptr.Ptr(35.185049),
		Longitude:       ptr.Ptr(136.899464),
		LowestPrice:     1000,
		HighestPrice:    5000,
		SeatingCapacity: 20,
		OpeningTime:     "11:00",
		ClosingTime:     "22:00",
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeRestaurantRepo{
		restaurant:       testRestaurant(),
		categories:       []*domain.Category{{ID: 3, Name: "Суши"}},
		dayIndexes:       []int{2},
		averageScore:     ptr.Ptr(4.3),
		reservationCount: 17,
	}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "11:00", resp.OpeningTime)
	assert.Equal(t, "22:00", resp.ClosingTime)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "Суши", resp.Categories[0].Name)
	assert.Equal(t, []int{2}, resp.HolidayDayIndexes)
	require.NotNil(t, resp.AverageScore)
	assert.Equal(t, 4.3, *resp.AverageScore)
	assert.Equal(t, int64(17), resp.ReservationCount)

	// Понедельник 15:30, часы 11:00-22:00, выходной вторник
	assert.True(t, resp.IsOpenNow)

	require.NotNil(t, resp.DistanceKm)
	assert.InDelta(t, 2.24, *resp.DistanceKm, 0.5)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeRestaurantRepo{})

	_, err := svc.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestService_GetByID_NoReviews(t *testing.T) {
	svc := newTestService(&fakeRestaurantRepo{restaurant: testRestaurant()})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, resp.AverageScore)
	assert.Zero(t, resp.ReservationCount)
}

func TestService_GetByID_ClosedOnHoliday(t *testing.T) {
	repo := &fakeRestaurantRepo{
		restaurant: testRestaurant(),
		dayIndexes: []int{1}, // выходной в понедельник
	}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, resp.IsOpenNow)
}

func TestService_GetByID_NoCoordinates(t *testing.T) {
	restaurant := testRestaurant()
	restaurant.Latitude = nil
	restaurant.Longitude = nil
	svc := newTestService(&fakeRestaurantRepo{restaurant: restaurant})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, resp.DistanceKm)
}
