package dto

// ProjectDTO exposes a normalized portfolio project.
type ProjectDTO struct {
	ID          string `json:"id" example:"3"`
	DocumentID  string `json:"document_id,omitempty"`
	Title       string `json:"title" example:"Portfolio site"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" example:"https://cms.example.com/uploads/site.png"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"published_at" example:"2024-03-01"`
	Category    string `json:"category" example:"Web"`
	Featured    bool   `json:"featured"`
}

// ProjectListDTO is the projects list page.
//
// Items is the whole sorted collection; CurrentPageItems is the requested page
// of the category-filtered collection.
type ProjectListDTO struct {
	Items            []ProjectDTO    `json:"items"`
	Categories       []string        `json:"categories"`
	CurrentPageItems []ProjectDTO    `json:"current_page_items"`
	SelectedCategory string          `json:"selected_category" example:"All"`
	CategoryLinks    []FilterLinkDTO `json:"category_links"`
	PageInfoDTO
	EmptyMessage string `json:"empty_message,omitempty" example:"No projects found."`
}

// HomeDTO is the landing page summary.
type HomeDTO struct {
	RecentProjects   []ProjectDTO `json:"recent_projects"`
	FeaturedProjects []ProjectDTO `json:"featured_projects"`
	LatestPosts      []PostDTO    `json:"latest_posts"`
}
