package restaurant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

// Понедельник, 13 октября 2025, 15:30
var testNow = time.Date(2025, 10, 13, 15, 30, 0, 0, time.UTC)

func buildSQL(t *testing.T, q domain.SearchQuery) (string, []interface{}) {
	t.Helper()

	builder, err := buildSearchQuery(q, testNow)
	require.NoError(t, err)

	sqlStr, args, err := builder.ToSql()
	require.NoError(t, err)
	return sqlStr, args
}

func TestBuildSearchQuery_NoFilters(t *testing.T) {
	sqlStr, args := buildSQL(t, domain.SearchQuery{Sort: domain.SortNewest})

	assert.Contains(t, sqlStr, "FROM restaurants r")
	assert.Contains(t, sqlStr, "ORDER BY r.created_at DESC, r.id DESC")
	assert.NotContains(t, sqlStr, "GROUP BY")
	assert.NotContains(t, sqlStr, "JOIN")
	assert.Empty(t, args)
}

func TestBuildSearchQuery_Keyword(t *testing.T) {
	sqlStr, args := buildSQL(t, domain.SearchQuery{
		Filter: domain.RestaurantFilter{Keyword: ptr.Ptr("суши")},
		Sort:   domain.SortNewest,
	})

	assert.Contains(t, sqlStr, "LEFT JOIN categories_restaurants kcr ON kcr.restaurant_id = r.id")
	assert.Contains(t, sqlStr, "LEFT JOIN categories kc ON kc.id = kcr.category_id")
	assert.Contains(t, sqlStr, "r.name ILIKE")
	assert.Contains(t, sqlStr, "r.address ILIKE")
	assert.Contains(t, sqlStr, "kc.name ILIKE")
	// Соединение с категориями размножает строки: нужна группировка
	assert.Contains(t, sqlStr, "GROUP BY r.id")
	assert.Contains(t, args, "%суши%")
}

func TestBuildSearchQuery_Category(t *testing.T) {
	sqlStr, args := buildSQL(t, domain.SearchQuery{
		Filter: domain.RestaurantFilter{CategoryID: ptr.Ptr(int64(3))},
		Sort:   domain.SortNewest,
	})

	assert.Contains(t, sqlStr, "JOIN categories_restaurants fcr ON fcr.restaurant_id = r.id")
	assert.Contains(t, sqlStr, "fcr.category_id =")
	// INNER JOIN по одной категории строк не размножает
	assert.NotContains(t, sqlStr, "GROUP BY")
	assert.Contains(t, args, int64(3))
}

func TestBuildSearchQuery_MaxPrice(t *testing.T) {
	sqlStr, args := buildSQL(t, domain.SearchQuery{
		Filter: domain.RestaurantFilter{MaxPrice: ptr.Ptr(3000)},
		Sort:   domain.SortNewest,
	})

	assert.Contains(t, sqlStr, "r.lowest_price <=")
	assert.Contains(t, args, 3000)
}

func TestBuildSearchQuery_MinRating(t *testing.T) {
	sqlStr, args := buildSQL(t, domain.SearchQuery{
		Filter: domain.RestaurantFilter{MinRating: ptr.Ptr(4.0)},
		Sort:   domain.SortNewest,
	})

	assert.Contains(t, sqlStr, "LEFT JOIN reviews rev ON rev.restaurant_id = r.id")
	assert.Contains(t, sqlStr, "GROUP BY r.id")
	assert.Contains(t, sqlStr, "HAVING AVG(rev.score) >=")
	assert.Contains(t, args, 4.0)
}

func TestBuildSearchQuery_OpenNow(t *testing.T) {
	sqlStr, args := buildSQL(t, domain.SearchQuery{
		Filter: domain.RestaurantFilter{OpenNow: true},
		Sort:   domain.SortNewest,
	})

	// Полуоткрытый интервал: открытие включается, закрытие нет
	assert.Contains(t, sqlStr, "r.opening_time <=")
	assert.Contains(t, sqlStr, "r.closing_time >")
	assert.Contains(t, sqlStr, "NOT EXISTS")
	assert.Contains(t, sqlStr, "rh.day_index =")

	// Понедельник = 1 при нумерации с воскресенья
	assert.Contains(t, args, 1)
}

func TestBuildSearchQuery_SortPriceAsc(t *testing.T) {
	sqlStr, _ := buildSQL(t, domain.SearchQuery{Sort: domain.SortPriceAsc})

	assert.Contains(t, sqlStr, "ORDER BY r.lowest_price ASC, r.id ASC")
}

func TestBuildSearchQuery_SortRatingDesc(t *testing.T) {
	sqlStr, _ := buildSQL(t, domain.SearchQuery{Sort: domain.SortRatingDesc})

	assert.Contains(t, sqlStr, "LEFT JOIN reviews rev ON rev.restaurant_id = r.id")
	assert.Contains(t, sqlStr, "GROUP BY r.id")
	assert.Contains(t, sqlStr, "ORDER BY AVG(rev.score) DESC NULLS LAST, r.id ASC")
}

// При фильтре по оценке и сортировке по ней же reviews соединяется один раз
func TestBuildSearchQuery_MinRatingWithRatingSort(t *testing.T) {
	sqlStr, _ := buildSQL(t, domain.SearchQuery{
		Filter: domain.RestaurantFilter{MinRating: ptr.Ptr(4.0)},
		Sort:   domain.SortRatingDesc,
	})

	assert.Equal(t, 1, strings.Count(sqlStr, "LEFT JOIN reviews rev"))
}

func TestBuildSearchQuery_SortPopularityDesc(t *testing.T) {
	sqlStr, _ := buildSQL(t, domain.SearchQuery{Sort: domain.SortPopularityDesc})

	assert.Contains(t, sqlStr, "LEFT JOIN reservations res ON res.restaurant_id = r.id")
	assert.Contains(t, sqlStr, "GROUP BY r.id")
	assert.Contains(t, sqlStr, "ORDER BY COUNT(DISTINCT res.id) DESC, r.id ASC")
}

func TestBuildSearchQuery_SortDistanceAsc(t *testing.T) {
	reference := domain.Coordinates{Latitude: 35.17, Longitude: 136.88}

	sqlStr, args := buildSQL(t, domain.SearchQuery{
		Sort:      domain.SortDistanceAsc,
		Reference: reference,
	})

	// Рестораны без координат исключаются из выдачи
	assert.Contains(t, sqlStr, "r.latitude IS NOT NULL AND r.longitude IS NOT NULL")
	assert.Contains(t, sqlStr, "ASIN(SQRT(")
	assert.Contains(t, sqlStr, "2 * 6371 * ")
	assert.Contains(t, args, reference.Latitude)
	assert.Contains(t, args, reference.Longitude)
}

func TestBuildSearchQuery_UnknownSort(t *testing.T) {
	_, err := buildSearchQuery(domain.SearchQuery{Sort: domain.SortOrder("BY_PRICE")}, testNow)

	assert.Error(t, err)
}

func TestBuildSearchQuery_Pagination(t *testing.T) {
	q := domain.SearchQuery{
		Sort: domain.SortNewest,
		Page: domain.PageRequest{Page: 2, Size: 15},
	}

	builder, err := buildSearchQuery(q, testNow)
	require.NoError(t, err)

	sqlStr, _, err := builder.
		Limit(uint64(q.Page.Limit())).
		Offset(uint64(q.Page.Offset())).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "LIMIT 15")
	assert.Contains(t, sqlStr, "OFFSET 30")
}

func TestBuildSearchIDQuery_OnlyID(t *testing.T) {
	builder, err := buildSearchIDQuery(domain.SearchQuery{Sort: domain.SortNewest}, testNow)
	require.NoError(t, err)

	sqlStr, _, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "SELECT r.id FROM restaurants r")
	assert.NotContains(t, sqlStr, "r.name")
}

func TestBuildSearchQuery_CombinedFilters(t *testing.T) {
	sqlStr, args := buildSQL(t, domain.SearchQuery{
		Filter: domain.RestaurantFilter{
			Keyword:  ptr.Ptr("рамэн"),
			MaxPrice: ptr.Ptr(2000),
			OpenNow:  true,
		},
		Sort: domain.SortPriceAsc,
	})

	assert.Contains(t, sqlStr, "ILIKE")
	assert.Contains(t, sqlStr, "r.lowest_price <=")
	assert.Contains(t, sqlStr, "r.opening_time <=")
	assert.Contains(t, sqlStr, "GROUP BY r.id")
	assert.Contains(t, sqlStr, "ORDER BY r.lowest_price ASC, r.id ASC")
	// keyword x3, maxPrice, openNow x2, день недели
	assert.Len(t, args, 7)
}
