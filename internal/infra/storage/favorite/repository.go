package favorite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

// favoriteColumns колонки избранного, всегда читаются в одном порядке
var favoriteColumns = []string{
	"id",
	"restaurant_id",
	"user_id",
	"created_at",
}

// Repository репозиторий избранных ресторанов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория избранного
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет ресторан в избранное пользователя
func (r *Repository) Create(ctx context.Context, favorite *domain.Favorite) (*domain.Favorite, error) {
	query, args, err := psqlbuilder.Insert("favorites").
		Columns("restaurant_id", "user_id").
		Values(favorite.RestaurantID, favorite.UserID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&favorite.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	favorite.CreatedAt = createdAt.Time

	return favorite, nil
}

// GetByID получает запись избранного по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	query, args, err := psqlbuilder.Select(favoriteColumns...).
		From("favorites").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(r.db.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByRestaurantAndUser получает запись избранного по паре ресторан+пользователь.
// Используется для защиты от повторного добавления.
func (r *Repository) GetByRestaurantAndUser(ctx context.Context, restaurantID, userID int64) (*domain.Favorite, error) {
	query, args, err := psqlbuilder.Select(favoriteColumns...).
		From("favorites").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantAndUser - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(r.db.QueryRowContext(ctx, query, args...), "GetByRestaurantAndUser")
}

// GetByUserID получает избранное пользователя постранично,
// отсортированное по дате добавления от новых к старым
func (r *Repository) GetByUserID(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.Favorite, int64, error) {
	query, args, err := psqlbuilder.Select(favoriteColumns...).
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	favorites := make([]*domain.Favorite, 0)
	for rows.Next() {
		var favorite domain.Favorite
		var createdAt sql.NullTime

		if err := rows.Scan(&favorite.ID, &favorite.RestaurantID, &favorite.UserID, &createdAt); err != nil {
			return nil, 0, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		favorite.CreatedAt = createdAt.Time
		favorites = append(favorites, &favorite)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	total, err := r.countByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return favorites, total, nil
}

func (r *Repository) countByUserID(ctx context.Context, userID int64) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: countByUserID - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// Delete удаляет запись избранного
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("favorites").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (r *Repository) scanOne(row *sql.Row, method string) (*domain.Favorite, error) {
	var favorite domain.Favorite
	var createdAt sql.NullTime

	err := row.Scan(&favorite.ID, &favorite.RestaurantID, &favorite.UserID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrFavoriteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan favorite: %v", ErrScanRow, method, err)
	}

	favorite.CreatedAt = createdAt.Time

	return &favorite, nil
}
