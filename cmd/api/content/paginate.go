package content

// Page is one page of a filtered collection.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// TotalPages returns ceil(total/size). A non-positive size yields 0.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// Paginate slices items [(page-1)*size, page*size) clamped to the collection
// bounds. page is reported back as given; a page past the end is simply empty.
func Paginate[T any](items []T, size, page int) Page[T] {
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		Total:      len(items),
		TotalPages: TotalPages(len(items), size),
	}
	// page 가 범위를 벗어나면 곱하기 전에 끝낸다. (page-1)*size 는 큰 page 에서 overflow 된다.
	if size <= 0 || page < 1 || page > p.TotalPages {
		return p
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	p.Items = make([]T, end-start)
	copy(p.Items, items[start:end])
	return p
}

// HasControls reports whether a pagination control should be shown.
func (p Page[T]) HasControls() bool {
	return p.TotalPages > 1
}

// pageNumbers lists 1..totalPages, or nil when no control is shown.
func pageNumbers(totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}
	out := make([]int, totalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
