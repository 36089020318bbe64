package content

// Listing is the list pipeline of one page kind: normalize, sort newest
// first, then filter and paginate per query.
type Listing[T Dated] struct {
	Normalize func(RawItem) T
	PageSize  int
}

// Load normalizes and sorts a fetched collection. A nil collection (no data)
// stays nil.
func (l Listing[T]) Load(raws []RawItem) []T {
	if raws == nil {
		return nil
	}
	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		items = append(items, l.Normalize(raw))
	}
	return SortByDateDesc(items)
}

// Query filters the loaded items and returns the requested page.
func (l Listing[T]) Query(items []T, f Filter[T], page int) Page[T] {
	return Paginate(Apply(items, f), l.PageSize, page)
}
