package content

import (
	"strings"
)

// Normalizer maps raw CMS records into Project and Post values.
//
// Normalization is total: any RawItem, however incomplete, yields a usable
// item. Running it over its own JSON output is a no-op.
type Normalizer struct {
	mediaBaseURL string
}

// NewNormalizer returns a normalizer that resolves relative image URLs
// against mediaBaseURL. An empty base leaves relative URLs untouched.
func NewNormalizer(mediaBaseURL string) *Normalizer {
	return &Normalizer{mediaBaseURL: strings.TrimRight(mediaBaseURL, "/")}
}

// ResolveImage picks the URL for an item image:
// absolute http(s) URLs are used verbatim, relative URLs are prefixed with
// the media host, and a missing image becomes PlaceholderImage.
func (n *Normalizer) ResolveImage(img *RawImage) string {
	if img == nil {
		return PlaceholderImage
	}
	u := strings.TrimSpace(img.URL)
	switch {
	case u == "":
		return PlaceholderImage
	case u == PlaceholderImage:
		return u
	case isAbsoluteURL(u):
		return u
	case n.mediaBaseURL == "":
		return u
	case strings.HasPrefix(u, n.mediaBaseURL+"/"):
		return u
	default:
		return n.mediaBaseURL + "/" + strings.TrimLeft(u, "/")
	}
}

func isAbsoluteURL(u string) bool {
	lower := strings.ToLower(u)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Project normalizes a single project record.
func (n *Normalizer) Project(raw RawItem) Project {
	return Project{
		ID:          raw.ID.String(),
		DocumentID:  raw.DocumentID.String(),
		Title:       raw.Title.String(),
		Description: firstNonEmpty(raw.Description, raw.Excerpt),
		Image:       n.ResolveImage(raw.Image),
		URL:         raw.URL.String(),
		Date:        firstNonEmpty(raw.Date, raw.PublishedAt),
		Category:    raw.Category.String(),
		Featured:    bool(raw.Featured),
	}
}

// Post normalizes a single post record.
func (n *Normalizer) Post(raw RawItem) Post {
	return Post{
		ID:      raw.ID.String(),
		Title:   raw.Title.String(),
		Slug:    raw.Slug.String(),
		Date:    firstNonEmpty(raw.Date, raw.PublishedAt),
		Excerpt: firstNonEmpty(raw.Excerpt, raw.Description),
		Author:  raw.Author.String(),
		Image:   n.ResolveImage(raw.Image),
		Body:    raw.Body.String(),
	}
}

// Projects normalizes a raw collection. A nil collection stays nil.
func (n *Normalizer) Projects(raws []RawItem) []Project {
	return normalizeAll(raws, n.Project)
}

// Posts normalizes a raw collection. A nil collection stays nil.
func (n *Normalizer) Posts(raws []RawItem) []Post {
	return normalizeAll(raws, n.Post)
}

func normalizeAll[T any](raws []RawItem, fn func(RawItem) T) []T {
	if raws == nil {
		return nil
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		out = append(out, fn(raw))
	}
	return out
}

func firstNonEmpty(values ...FlexString) string {
	for _, v := range values {
		if v != "" {
			return v.String()
		}
	}
	return ""
}
