package request

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}
