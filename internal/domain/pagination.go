package domain

// PageRequest запрос страницы: нулевой индекс страницы и размер.
// Общий контракт пагинации для поиска и всех списков.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest нормализует параметры страницы:
// отрицательный номер становится нулевым, размер ограничивается maxSize,
// нулевой или отрицательный размер заменяется defaultSize.
func NewPageRequest(page, size, defaultSize, maxSize int) PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return PageRequest{Page: page, Size: size}
}

// Offset возвращает смещение для LIMIT/OFFSET
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Limit возвращает размер страницы
func (p PageRequest) Limit() int {
	return p.Size
}

// PageInfo метаданные страницы в ответе.
// Страница за пределами диапазона - это пустой список с корректным
// TotalElements, а не ошибка.
type PageInfo struct {
	Page          int
	Size          int
	TotalElements int64
}

// TotalPages возвращает количество страниц при текущем размере
func (p PageInfo) TotalPages() int64 {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalElements + int64(p.Size) - 1) / int64(p.Size)
}
