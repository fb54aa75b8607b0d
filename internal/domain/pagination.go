package domain

const (
	DefaultPageLimit int64 = 10
	MaxPageLimit     int64 = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int64
	Limit  int64
}

// NewPage applies defaults to missing or out-of-range values.
func NewPage(number, limit int64) Page {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Limit
}

type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int64 `json:"itemsPerPage"`
}

// NewPagination describes page p of a result set holding total items.
func NewPagination(p Page, total int64) Pagination {
	pages := int64(0)
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{
		CurrentPage:  p.Number,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
	}
}
