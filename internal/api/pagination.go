package api

// swagger:model api.Pagination
type Pagination struct {
	Total       int `json:"total" example:"42"`
	TotalPages  int `json:"totalPages" example:"5"`
	CurrentPage int `json:"currentPage" example:"1"`
	PerPage     int `json:"perPage" example:"10"`
}
