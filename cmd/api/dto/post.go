package dto

// PostDTO exposes a normalized blog post.
// Body is only filled on the detail endpoint.
type PostDTO struct {
	ID          string `json:"id" example:"12"`
	Title       string `json:"title" example:"Deploying Go services"`
	Slug        string `json:"slug" example:"deploying-go-services"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author,omitempty"`
	ImageURL    string `json:"image_url" example:"/images/no-image.png"`
	PublishedAt string `json:"published_at" example:"2024-03-01T00:00:00.000Z"`
	Body        string `json:"body,omitempty"`
}

// PostListDTO is the blog list page.
type PostListDTO struct {
	CurrentPageItems []PostDTO `json:"current_page_items"`
	Search           string    `json:"search"`
	PageInfoDTO
	EmptyMessage string `json:"empty_message,omitempty" example:"No blog posts available yet."`
}
