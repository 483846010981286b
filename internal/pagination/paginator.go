package pagination

import (
	"strconv"
	"yatube/internal/models"
)

// Page - один экран ленты.
type Page struct {
	Posts      []models.Post `json:"posts"`
	Number     int           `json:"page"`
	PerPage    int           `json:"perPage"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
	HasNext    bool          `json:"hasNext"`
	HasPrev    bool          `json:"hasPrev"`
}

// ParsePageNumber разбирает ?page= из запроса.
// Пустое, нечисловое или неположительное значение считается первой страницей.
func ParsePageNumber(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 1
	}
	return number
}

// Paginate режет полную ленту на страницы фиксированного размера.
// Номер за последней страницей прижимается к последней, а не отдает пусто:
// так ведут себя привычные пагинаторы, и на это завязаны клиенты.
func Paginate(posts []models.Post, pageNumber, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total := len(posts)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := posts[start:end]
	if items == nil {
		items = []models.Post{}
	}

	return Page{
		Posts:      items,
		Number:     pageNumber,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
	}
}
