// Package content holds the list pipeline shared by every list page:
// raw CMS decoding, normalization, date ordering, filters, pagination and
// the serializable query state that drives them.
//
// Everything here is pure. Nothing mutates its input collection.
package content

// PlaceholderImage is served for items without a usable image.
const PlaceholderImage = "/images/no-image.png"

// Project is a normalized portfolio project.
//
// JSON tags mirror the CMS field names so a normalized collection can be fed
// back through DecodeCollection and normalized again without change.
type Project struct {
	ID          string `json:"id"`
	DocumentID  string `json:"documentId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url,omitempty"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
}

// Post is a normalized blog post.
type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author,omitempty"`
	Image   string `json:"image"`
	Body    string `json:"body,omitempty"`
}

// Dated is implemented by items that can be ordered by publish date.
type Dated interface {
	PublishedAt() string
}

// Searchable is implemented by items that take part in text search.
type Searchable interface {
	SearchFields() []string
}

func (p Project) PublishedAt() string { return p.Date }

func (p Project) SearchFields() []string { return []string{p.Title, p.Description} }

func (p Post) PublishedAt() string { return p.Date }

func (p Post) SearchFields() []string { return []string{p.Title, p.Excerpt} }
