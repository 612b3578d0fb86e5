package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	favoriteRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/favorite"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
)

type fakeFavoriteRepo struct {
	favorites map[int64]*domain.Favorite
	nextID    int64
}

func newFakeFavoriteRepo(favorites ...*domain.Favorite) *fakeFavoriteRepo {
	repo := &fakeFavoriteRepo{favorites: make(map[int64]*domain.Favorite), nextID: 100}
	for _, f := range favorites {
		repo.favorites[f.ID] = f
	}
	return repo
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *domain.Favorite) (*domain.Favorite, error) {
	f.nextID++
	created := *favorite
	created.ID = f.nextID
	created.CreatedAt = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)
	f.favorites[created.ID] = &created
	return &created, nil
}

func (f *fakeFavoriteRepo) GetByID(_ context.Context, id int64) (*domain.Favorite, error) {
	fav, ok := f.favorites[id]
	if !ok {
		return nil, favoriteRepo.ErrFavoriteNotFound
	}
	return fav, nil
}

func (f *fakeFavoriteRepo) GetByRestaurantAndUser(_ context.Context, restaurantID, userID int64) (*domain.Favorite, error) {
	for _, fav := range f.favorites {
		if fav.RestaurantID == restaurantID && fav.UserID == userID {
			return fav, nil
		}
	}
	return nil, favoriteRepo.ErrFavoriteNotFound
}

func (f *fakeFavoriteRepo) GetByUserID(_ context.Context, userID int64, page domain.PageRequest) ([]*domain.Favorite, int64, error) {
	var all []*domain.Favorite
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			all = append(all, fav)
		}
	}

	total := int64(len(all))
	offset := page.Offset()
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + page.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.favorites[id]; !ok {
		return favoriteRepo.ErrFavoriteNotFound
	}
	delete(f.favorites, id)
	return nil
}

type fakeRestaurantRepo struct {
	existingIDs map[int64]bool
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	if !f.existingIDs[id] {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return &domain.Restaurant{ID: id, Name: "Рамэн на углу"}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var paidClaims = domain.Claims{UserID: 42, Tier: domain.TierPaid}

func newTestService(favorites *fakeFavoriteRepo) *Service {
	return NewService(favorites, &fakeRestaurantRepo{existingIDs: map[int64]bool{1: true}}, noopLogger{})
}

func TestService_Create(t *testing.T) {
	repo := newFakeFavoriteRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), paidClaims, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.RestaurantID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.NotZero(t, resp.ID)
}

func TestService_Create_Duplicate(t *testing.T) {
	repo := newFakeFavoriteRepo(&domain.Favorite{ID: 5, RestaurantID: 1, UserID: 42})
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), paidClaims, 1)

	assert.ErrorIs(t, err, ErrAlreadyFavorite)
}

// Та же запись у другого пользователя дубликатом не считается
func TestService_Create_SameRestaurantDifferentUser(t *testing.T) {
	repo := newFakeFavoriteRepo(&domain.Favorite{ID: 5, RestaurantID: 1, UserID: 7})
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), paidClaims, 1)

	assert.NoError(t, err)
}

func TestService_Create_RestaurantNotFound(t *testing.T) {
	svc := newTestService(newFakeFavoriteRepo())

	_, err := svc.Create(context.Background(), paidClaims, 999)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestService_Create_FreeTierRejected(t *testing.T) {
	svc := newTestService(newFakeFavoriteRepo())

	_, err := svc.Create(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierFree}, 1)

	assert.ErrorIs(t, err, ErrPaidPlanRequired)
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		favorite    *domain.Favorite
		claims      domain.Claims
		expectedErr error
	}{
		{
			name:     "своя запись удаляется",
			favorite: &domain.Favorite{ID: 5, RestaurantID: 1, UserID: 42},
			claims:   paidClaims,
		},
		{
			name:        "чужая запись недоступна",
			favorite:    &domain.Favorite{ID: 5, RestaurantID: 1, UserID: 7},
			claims:      paidClaims,
			expectedErr: ErrAccessDenied,
		},
		{
			name:        "бесплатный тариф отклоняется",
			favorite:    &domain.Favorite{ID: 5, RestaurantID: 1, UserID: 42},
			claims:      domain.Claims{UserID: 42, Tier: domain.TierFree},
			expectedErr: ErrPaidPlanRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeFavoriteRepo(tt.favorite)
			svc := newTestService(repo)

			err := svc.Delete(context.Background(), tt.claims, 5)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Contains(t, repo.favorites, int64(5))
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, repo.favorites, int64(5))
		})
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := newTestService(newFakeFavoriteRepo())

	err := svc.Delete(context.Background(), paidClaims, 999)

	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestService_GetUserFavorites(t *testing.T) {
	repo := newFakeFavoriteRepo(
		&domain.Favorite{ID: 1, RestaurantID: 1, UserID: 42},
		&domain.Favorite{ID: 2, RestaurantID: 2, UserID: 42},
		&domain.Favorite{ID: 3, RestaurantID: 1, UserID: 7},
	)
	svc := newTestService(repo)

	resp, err := svc.GetUserFavorites(context.Background(), paidClaims, domain.PageRequest{Page: 0, Size: 10})

	require.NoError(t, err)
	assert.Len(t, resp.Favorites, 2)
	assert.Equal(t, int64(2), resp.TotalElements)
}

func TestService_GetUserFavorites_FreeTierRejected(t *testing.T) {
	svc := newTestService(newFakeFavoriteRepo())

	_, err := svc.GetUserFavorites(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierFree}, domain.PageRequest{Page: 0, Size: 10})

	assert.ErrorIs(t, err, ErrPaidPlanRequired)
}
