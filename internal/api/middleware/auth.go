package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/userservice"
)

// HeaderUserID заголовок с идентификатором аутентифицированного пользователя.
// Аутентификацию выполняет шлюз, сервис доверяет заголовку.
const HeaderUserID = "X-User-ID"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgUserNotFound  = "пользователь не найден"
)

type claimsContextKey struct{}

// Auth middleware защищённых маршрутов: разбирает X-User-ID, запрашивает
// тариф пользователя в UserService и кладёт Claims в контекст запроса.
type Auth struct {
	userClient UserServiceClient
	logger     Logger
}

// NewAuth создает новый экземпляр auth middleware
func NewAuth(userClient UserServiceClient, logger Logger) *Auth {
	return &Auth{
		userClient: userClient,
		logger:     logger,
	}
}

// Middleware оборачивает обработчик проверкой аутентификации
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderUserID)
		if header == "" {
			a.logger.Warn("Auth: missing %s header for %s %s", HeaderUserID, r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			a.logger.Warn("Auth: invalid %s header %q for %s %s", HeaderUserID, header, r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		claims, err := a.userClient.GetClaims(r.Context(), userID)
		if err != nil {
			if errors.Is(err, userservice.ErrUserNotFound) {
				a.logger.Warn("Auth: user=%d not found", userID)
				handlers.RespondUnauthorized(w, msgUserNotFound)
				return
			}
			a.logger.Error("Auth: failed to get claims for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext возвращает Claims, положенные auth middleware.
// Второе значение false означает, что маршрут не прошёл через middleware.
func ClaimsFromContext(ctx context.Context) (domain.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(domain.Claims)
	return claims, ok
}
