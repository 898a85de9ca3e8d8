package page

// Page is one slice of a filtered, sorted result set plus the pagination
// metadata callers bind to. Field names follow the stable response contract
// (totalDocs, pagingCounter, ...) and must not drift.
type Page[T any] struct {
	Items         []T
	TotalDocs     int
	Limit         int
	Page          int
	TotalPages    int
	PagingCounter int // 1-based index of the first item; 0 when the set is empty
	HasPrevPage   bool
	HasNextPage   bool
	PrevPage      *int // nil when absent
	NextPage      *int
}

// Build slices rows into the requested page and computes metadata.
//
// TotalDocs is the post-filter count, so a page past the end yields empty
// Items with HasNextPage=false rather than an error. TotalPages is
// ceil(TotalDocs/limit), which makes an empty set report zero pages.
// page and limit must already be positive (query validation guarantees it).
func Build[T any](rows []T, pageNum, limit int) Page[T] {
	total := len(rows)
	totalPages := (total + limit - 1) / limit

	start := (pageNum - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	p := Page[T]{
		Items:       rows[start:end],
		TotalDocs:   total,
		Limit:       limit,
		Page:        pageNum,
		TotalPages:  totalPages,
		HasPrevPage: pageNum > 1,
		HasNextPage: pageNum < totalPages,
	}
	if total > 0 {
		p.PagingCounter = (pageNum-1)*limit + 1
	}
	if p.HasPrevPage {
		prev := pageNum - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := pageNum + 1
		p.NextPage = &next
	}
	return p
}
