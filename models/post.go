package models

import "portfolio/render"

// Post is a learning-log entry. It may carry a weak reference to the Project
// it is about; the Project does not know about its Posts.
type Post struct {
	ID             string          `json:"_id"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Overview       string          `json:"overview"`
	PublishedAt    string          `json:"publishedAt"`
	Tags           []string        `json:"tags"`
	RelatedProject *ProjectRef     `json:"relatedProject"`
	Images         []Image         `json:"images"`
	Body           render.Document `json:"body"`
	CreatedAt      string          `json:"_createdAt"`
}

// ProjectRef is the dereferenced slice of a related Project, as projected on
// post detail fetches.
type ProjectRef struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}
