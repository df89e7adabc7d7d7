package response

// SearchResponse holds every match for a search term in storage order.
type SearchResponse[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func NewSearchResponse[T any](data []T) *SearchResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &SearchResponse[T]{
		Count: len(data),
		Data:  data,
	}
}
