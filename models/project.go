package models

import "portfolio/render"

// Project categories are a fixed editorial enumeration.
const (
	CategoryAIML           = "AI/ML"
	CategoryWebDev         = "Web Dev"
	CategoryDataScience    = "Data Science"
	CategoryComputerVision = "Computer Vision"
)

// Project is an authored case study fetched from the content store. Every
// field except title and slug is optional; the card and detail mappers
// normalize what display needs.
type Project struct {
	ID                  string          `json:"_id"`
	Title               string          `json:"title"`
	Slug                string          `json:"slug"`
	IsFeatured          bool            `json:"isFeatured"`
	Overview            string          `json:"overview"`
	Category            string          `json:"category"`
	Tags                []string        `json:"tags"`
	GithubLink          string          `json:"githubLink"`
	DemoLink            string          `json:"demoLink"`
	Problem             string          `json:"problem"`
	Solution            string          `json:"solution"`
	Features            []string        `json:"features"`
	TechnicalHighlights []string        `json:"technicalHighlights"`
	Images              []Image         `json:"images"`
	Body                render.Document `json:"body"`
	CreatedAt           string          `json:"_createdAt"`
}

// Image is one gallery entry: an opaque asset reference plus a caption.
type Image struct {
	Key     string   `json:"_key"`
	Asset   AssetRef `json:"asset"`
	Caption string   `json:"caption"`
}

type AssetRef struct {
	Ref string `json:"_ref"`
}
