package query

// Page is one slice of an ordered result set plus the totals pagination
// controls need.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// NewPage assembles a page for the normalized filter. A nil slice becomes
// empty so out-of-range pages serialize as [].
func NewPage[T any](items []T, f Filter, total int) *Page[T] {
	n := f.Normalize()
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, PageNumber: n.Page, PageSize: n.PageSize, TotalCount: total}
}

// TotalPages is at least one so an empty list still has a first page.
func (p *Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount == 0 {
		return 1
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

func (p *Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}

func (p *Page[T]) HasPrevious() bool {
	return p.PageNumber > 1
}

// Paginate slices an already ordered, already filtered set. It backs
// in-memory readers and keeps their paging identical to the SQL LIMIT/OFFSET.
func Paginate[T any](all []T, f Filter) *Page[T] {
	n := f.Normalize()
	start := n.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + n.PageSize
	if end > len(all) {
		end = len(all)
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return NewPage(items, n, len(all))
}
