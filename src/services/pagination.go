package services

const defaultPageSize = 20

// PageRequest is a zero-based page index plus a page size. Ordering and
// offset math live here; the services only apply it.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return defaultPageSize
	}
	return p.Size
}

func (p PageRequest) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return p.Page * p.Limit()
}
