package dto

// PageLinkDTO is one entry of the pagination control.
// Href points at the same list with only the page changed.
type PageLinkDTO struct {
	Page    int    `json:"page" example:"2"`
	Href    string `json:"href" example:"/api/v1/projects?category=Web&page=2"`
	Current bool   `json:"current" example:"false"`
}

// FilterLinkDTO is one category option. Following Href always lands on page 1.
type FilterLinkDTO struct {
	Category string `json:"category" example:"Web"`
	Href     string `json:"href" example:"/api/v1/projects?category=Web"`
	Selected bool   `json:"selected" example:"true"`
}

// PageInfoDTO describes the page returned by a list endpoint.
//
// Pagination is empty when TotalPages <= 1, so clients render no control.
type PageInfoDTO struct {
	Page       int           `json:"page" example:"1"`
	PageSize   int           `json:"page_size" example:"10"`
	Total      int           `json:"total" example:"12"`
	TotalPages int           `json:"total_pages" example:"2"`
	Pagination []PageLinkDTO `json:"pagination"`
}
