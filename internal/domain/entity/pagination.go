package entity

// PaginationParams represents pagination request parameters. Pages are
// zero-based.
type PaginationParams struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"page_size"`
}

// PaginationMeta represents pagination metadata in responses
type PaginationMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// Pagination constants
const (
	DefaultPageSize = 100
	MaxPageSize     = 100
	MinPageSize     = 1
)

// Clamp normalizes pagination parameters: negative pages become page zero and
// any page size outside [MinPageSize, MaxPageSize] falls back to the default.
func (p *PaginationParams) Clamp() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		p.PageSize = DefaultPageSize
	}
}

// Offset calculates the database offset from page and page size
func (p *PaginationParams) Offset() int {
	return p.Page * p.PageSize
}
