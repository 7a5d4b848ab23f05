package models

// Pagination is the paging block the catalog API attaches to list responses.
type Pagination struct {
	Total       int   `json:"total"`
	Count       int   `json:"count"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Links       Links `json:"links"`
}

// Links carries the API's own next/current page URLs. The console computes
// page numbers itself and only keeps these for completeness.
type Links struct {
	Next    string `json:"next"`
	Current string `json:"current"`
}

// Meta wraps the pagination block inside a data envelope.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}
