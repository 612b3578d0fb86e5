package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/userservice"
)

type fakeUserClient struct {
	claims domain.Claims
	err    error
}

func (f *fakeUserClient) GetClaims(_ context.Context, _ int64) (domain.Claims, error) {
	if f.err != nil {
		return domain.Claims{}, f.err
	}
	return f.claims, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func runAuth(t *testing.T, client *fakeUserClient, header string) (*httptest.ResponseRecorder, *domain.Claims) {
	t.Helper()

	var captured *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			captured = &claims
		}
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	if header != "" {
		req.Header.Set(HeaderUserID, header)
	}
	rec := httptest.NewRecorder()

	NewAuth(client, noopLogger{}).Middleware(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_ClaimsStoredInContext(t *testing.T) {
	client := &fakeUserClient{claims: domain.Claims{UserID: 42, Tier: domain.TierPaid}}

	rec, claims := runAuth(t, client, "42")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.TierPaid, claims.Tier)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, claims := runAuth(t, &fakeUserClient{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
}

func TestAuth_InvalidHeader(t *testing.T) {
	for _, header := range []string{"abc", "-1", "0", "1.5"} {
		t.Run(header, func(t *testing.T) {
			rec, claims := runAuth(t, &fakeUserClient{}, header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, claims)
		})
	}
}

func TestAuth_UserNotFound(t *testing.T) {
	rec, claims := runAuth(t, &fakeUserClient{err: userservice.ErrUserNotFound}, "42")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
}

func TestAuth_UserServiceFailure(t *testing.T) {
	rec, claims := runAuth(t, &fakeUserClient{err: errors.New("connection refused")}, "42")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, claims)
}

func TestClaimsFromContext_Empty(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())

	assert.False(t, ok)
}
