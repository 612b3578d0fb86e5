package restaurant

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// restaurantColumns колонки ресторана, всегда читаются в одном порядке
var restaurantColumns = []string{
	"r.id",
	"r.name",
	"r.description",
	"r.address",
	"r.latitude",
	"r.longitude",
	"r.lowest_price",
	"r.highest_price",
	"r.seating_capacity",
	"r.opening_time",
	"r.closing_time",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий каталога ресторанов.
// Поиск собирается из ортогональных предикатов фильтра и выбираемой
// сортировки одним построителем запроса, вместо отдельного метода
// на каждую пару фильтр×сортировка.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Search выполняет поиск ресторанов по фильтру с сортировкой и пагинацией.
// Возвращает страницу ресторанов и общее количество записей под фильтром.
// Страница за пределами диапазона - пустой список, не ошибка.
func (r *Repository) Search(ctx context.Context, q domain.SearchQuery, now time.Time) ([]*domain.Restaurant, int64, error) {
	selectBuilder, err := buildSearchQuery(q, now)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	query, args, err := selectBuilder.
		Limit(uint64(q.Page.Limit())).
		Offset(uint64(q.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	restaurants, err := scanRestaurants(rows)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.countSearch(ctx, q, now)
	if err != nil {
		return nil, 0, err
	}

	return restaurants, total, nil
}

// countSearch считает общее количество ресторанов под фильтром.
// Запрос с GROUP BY/HAVING оборачивается в подзапрос, чтобы COUNT
// считал рестораны, а не строки соединения.
func (r *Repository) countSearch(ctx context.Context, q domain.SearchQuery, now time.Time) (int64, error) {
	inner, err := buildSearchIDQuery(q, now)
	if err != nil {
		return 0, fmt.Errorf("%w: countSearch - build inner query: %v", ErrBuildQuery, err)
	}

	innerSQL, innerArgs, err := inner.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countSearch - build inner query: %v", ErrBuildQuery, err)
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS matched", innerSQL)

	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, innerArgs...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: countSearch - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants r").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	restaurant, err := scanRestaurant(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	return restaurant, nil
}

// AverageScore возвращает среднюю оценку ресторана.
// Если отзывов нет - возвращает nil: такой ресторан исключается из фильтра
// по минимальной оценке и сортируется последним.
func (r *Repository) AverageScore(ctx context.Context, restaurantID int64) (*float64, error) {
	query, args, err := psqlbuilder.Select("AVG(score)").
		From("reviews").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AverageScore - build select query: %v", ErrBuildQuery, err)
	}

	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return nil, fmt.Errorf("%w: AverageScore - scan: %v", ErrScanRow, err)
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// ReservationCount возвращает количество броней ресторана (0, если броней нет)
func (r *Repository) ReservationCount(ctx context.Context, restaurantID int64) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(DISTINCT id)").
		From("reservations").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReservationCount - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: ReservationCount - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// DayIndexes возвращает индексы еженедельных выходных ресторана (0 = воскресенье)
func (r *Repository) DayIndexes(ctx context.Context, restaurantID int64) ([]int, error) {
	query, args, err := psqlbuilder.Select("rh.day_index").
		From("regular_holidays rh").
		Join("regular_holidays_restaurants rhr ON rhr.regular_holiday_id = rh.id").
		Where(squirrel.Eq{"rhr.restaurant_id": restaurantID}).
		OrderBy("rh.day_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DayIndexes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DayIndexes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dayIndexes := make([]int, 0)
	for rows.Next() {
		var dayIndex int
		if err := rows.Scan(&dayIndex); err != nil {
			return nil, fmt.Errorf("%w: DayIndexes - scan day_index: %v", ErrScanRow, err)
		}
		dayIndexes = append(dayIndexes, dayIndex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DayIndexes - rows error: %v", ErrScanRow, err)
	}

	return dayIndexes, nil
}

// Categories возвращает категории ресторана
func (r *Repository) Categories(ctx context.Context, restaurantID int64) ([]*domain.Category, error) {
	query, args, err := psqlbuilder.Select("c.id", "c.name").
		From("categories c").
		Join("categories_restaurants cr ON cr.category_id = c.id").
		Where(squirrel.Eq{"cr.restaurant_id": restaurantID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Categories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Categories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("%w: Categories - scan category: %v", ErrScanRow, err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Categories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// scanRestaurant сканирует одну строку в ресторан
func scanRestaurant(scan func(dest ...interface{}) error) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var latitude, longitude sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.Address,
		&latitude,
		&longitude,
		&restaurant.LowestPrice,
		&restaurant.HighestPrice,
		&restaurant.SeatingCapacity,
		&restaurant.OpeningTime,
		&restaurant.ClosingTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if latitude.Valid {
		restaurant.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		restaurant.Longitude = &longitude.Float64
	}
	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return &restaurant, nil
}

// scanRestaurants сканирует результаты запроса в слайс ресторанов
func scanRestaurants(rows *sql.Rows) ([]*domain.Restaurant, error) {
	restaurants := make([]*domain.Restaurant, 0)

	for rows.Next() {
		restaurant, err := scanRestaurant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRestaurants - scan row: %v", ErrScanRow, err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRestaurants - rows error: %v", ErrScanRow, err)
	}

	return restaurants, nil
}

// openNowCondition условие "ресторан сейчас открыт".
// Интервал полуоткрытый: время закрытия не включается.
// Второй предикат - NOT EXISTS по еженедельным выходным на сегодняшний день недели.
func openNowCondition(now time.Time) squirrel.Sqlizer {
	currentTime := types.NewTimeString(now)
	dayIndex := int(now.Weekday())

	return squirrel.And{
		squirrel.Expr("r.opening_time <= ? AND r.closing_time > ?", currentTime, currentTime),
		squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM regular_holidays_restaurants rhr "+
				"JOIN regular_holidays rh ON rh.id = rhr.regular_holiday_id "+
				"WHERE rhr.restaurant_id = r.id AND rh.day_index = ?)",
			dayIndex,
		),
	}
}

// distanceOrderClause выражение сортировки по расстоянию (формула гаверсинуса).
// Радиус Земли берётся из domain.EarthRadiusKm - той же константы, что и
// в Go-реализации, чтобы оба вычисления не расходились.
func distanceOrderClause(ref domain.Coordinates) (string, []interface{}) {
	expr := fmt.Sprintf(
		"2 * %d * ASIN(SQRT("+
			"POWER(SIN(RADIANS(r.latitude - ?) / 2), 2) + "+
			"COS(RADIANS(?)) * COS(RADIANS(r.latitude)) * "+
			"POWER(SIN(RADIANS(r.longitude - ?) / 2), 2))) ASC, r.id ASC",
		domain.EarthRadiusKm,
	)
	return expr, []interface{}{ref.Latitude, ref.Latitude, ref.Longitude}
}

// buildSearchQuery собирает запрос поиска: колонки ресторана + фильтр + сортировка
func buildSearchQuery(q domain.SearchQuery, now time.Time) (squirrel.SelectBuilder, error) {
	return composeSearch(psqlbuilder.Select(restaurantColumns...), q, now)
}

// buildSearchIDQuery собирает тот же запрос, но только с r.id (для COUNT)
func buildSearchIDQuery(q domain.SearchQuery, now time.Time) (squirrel.SelectBuilder, error) {
	return composeSearch(psqlbuilder.Select("r.id"), q, now)
}

// composeSearch применяет к builder предикаты фильтра и сортировку.
// GROUP BY r.id добавляется, как только появляется соединение, способное
// размножить строки: так ресторан, совпавший по нескольким категориям,
// попадает в выдачу ровно один раз.
func composeSearch(builder squirrel.SelectBuilder, q domain.SearchQuery, now time.Time) (squirrel.SelectBuilder, error) {
	needGroup := false
	reviewsJoined := false

	// --- Фильтры ---

	if q.Filter.Keyword != nil {
		pattern := "%" + *q.Filter.Keyword + "%"
		builder = builder.
			LeftJoin("categories_restaurants kcr ON kcr.restaurant_id = r.id").
			LeftJoin("categories kc ON kc.id = kcr.category_id").
			Where(squirrel.Or{
				squirrel.ILike{"r.name": pattern},
				squirrel.ILike{"r.address": pattern},
				squirrel.ILike{"kc.name": pattern},
			})
		needGroup = true
	}

	if q.Filter.CategoryID != nil {
		builder = builder.
			Join("categories_restaurants fcr ON fcr.restaurant_id = r.id").
			Where(squirrel.Eq{"fcr.category_id": *q.Filter.CategoryID})
	}

	if q.Filter.MaxPrice != nil {
		builder = builder.Where(squirrel.LtOrEq{"r.lowest_price": *q.Filter.MaxPrice})
	}

	if q.Filter.MinRating != nil {
		// LEFT JOIN + HAVING: у ресторана без отзывов AVG равен NULL,
		// сравнение с NULL ложно, и ресторан в выдачу не попадает
		builder = builder.
			LeftJoin("reviews rev ON rev.restaurant_id = r.id").
			Having("AVG(rev.score) >= ?", *q.Filter.MinRating)
		reviewsJoined = true
		needGroup = true
	}

	if q.Filter.OpenNow {
		builder = builder.Where(openNowCondition(now))
	}

	// --- Сортировка ---

	switch q.Sort {
	case domain.SortNewest:
		builder = builder.OrderBy("r.created_at DESC", "r.id DESC")

	case domain.SortPriceAsc:
		builder = builder.OrderBy("r.lowest_price ASC", "r.id ASC")

	case domain.SortRatingDesc:
		if !reviewsJoined {
			builder = builder.LeftJoin("reviews rev ON rev.restaurant_id = r.id")
		}
		needGroup = true
		builder = builder.OrderBy("AVG(rev.score) DESC NULLS LAST", "r.id ASC")

	case domain.SortPopularityDesc:
		builder = builder.LeftJoin("reservations res ON res.restaurant_id = r.id")
		needGroup = true
		builder = builder.OrderBy("COUNT(DISTINCT res.id) DESC", "r.id ASC")

	case domain.SortDistanceAsc:
		// Рестораны без координат молча исключаются из выдачи
		builder = builder.Where("r.latitude IS NOT NULL AND r.longitude IS NOT NULL")
		clause, args := distanceOrderClause(q.Reference)
		builder = builder.OrderByClause(clause, args...)

	default:
		return builder, fmt.Errorf("unsupported sort order: %s", q.Sort)
	}

	if needGroup {
		builder = builder.GroupBy("r.id")
	}

	return builder, nil
}
