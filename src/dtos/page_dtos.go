package dtos

type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Page is the list-endpoint envelope: content plus the requested page and
// the total match count.
type Page[T any] struct {
	Content       []T      `json:"content"`
	Pageable      Pageable `json:"pageable"`
	TotalElements int64    `json:"totalElements"`
}

func NewPage[T any](content []T, pageNumber, pageSize int, totalElements int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Pageable:      Pageable{PageNumber: pageNumber, PageSize: pageSize},
		TotalElements: totalElements,
	}
}
