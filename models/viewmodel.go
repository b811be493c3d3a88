package models

import "time"

// Display defaults for fields the store does not hold.
const (
	DefaultReadingTime = "5 min read"
	DefaultCategory    = "Tech"
)

// Tag caps for compact list cards. Detail views carry the full list.
const (
	articleCardMaxTags = 3
	projectCardMaxTags = 4
)

// ProjectCard is the compact listing view of a Project.
type ProjectCard struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Overview string   `json:"overview"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date"`
}

// ArticleCard is the compact listing view of a Post.
type ArticleCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ReadingTime string   `json:"readingTime"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
}

// GalleryImage is a resolved gallery entry, ready to display.
type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// ProjectDetail is the full case-study view.
type ProjectDetail struct {
	Title               string         `json:"title"`
	Slug                string         `json:"slug"`
	Overview            string         `json:"overview"`
	Category            string         `json:"category"`
	Tags                []string       `json:"tags"`
	GithubLink          string         `json:"githubLink,omitempty"`
	DemoLink            string         `json:"demoLink,omitempty"`
	Problem             string         `json:"problem"`
	Solution            string         `json:"solution"`
	Features            []string       `json:"features"`
	TechnicalHighlights []string       `json:"technicalHighlights"`
	Gallery             []GalleryImage `json:"gallery"`
	BodyHTML            string         `json:"bodyHtml"`
	Date                string         `json:"date"`
}

// PostDetail is the full article view.
type PostDetail struct {
	Title          string         `json:"title"`
	Slug           string         `json:"slug"`
	Overview       string         `json:"overview"`
	Tags           []string       `json:"tags"`
	Date           string         `json:"date"`
	ReadingTime    string         `json:"readingTime"`
	Gallery        []GalleryImage `json:"gallery"`
	BodyHTML       string         `json:"bodyHtml"`
	RelatedProject *ProjectRef    `json:"relatedProject,omitempty"`
}

// NewProjectCard maps a raw Project onto its listing card. Collection fields
// come back non-nil and tags are capped for the compact layout.
func NewProjectCard(p Project) ProjectCard {
	category := p.Category
	if category == "" {
		category = "Development"
	}
	return ProjectCard{
		ID:       p.ID,
		Title:    p.Title,
		Slug:     p.Slug,
		Overview: p.Overview,
		Category: category,
		Tags:     capTags(p.Tags, projectCardMaxTags),
		Date:     formatDate(p.CreatedAt, "Jan 2006"),
	}
}

// NewArticleCard maps a raw Post onto its listing card, filling the
// reading-time and category defaults the store has no fields for.
func NewArticleCard(p Post) ArticleCard {
	date := p.PublishedAt
	if date == "" {
		date = p.CreatedAt
	}
	category := DefaultCategory
	if p.RelatedProject != nil && p.RelatedProject.Category != "" {
		category = p.RelatedProject.Category
	}
	return ArticleCard{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Overview,
		Category:    category,
		ReadingTime: DefaultReadingTime,
		Date:        formatDate(date, "Jan 2, 2006"),
		Tags:        capTags(p.Tags, articleCardMaxTags),
	}
}

// NewProjectDetail maps a raw Project onto its detail view. The rendered body
// and resolved gallery are supplied by the caller so the mapping itself stays
// a pure transform.
func NewProjectDetail(p Project, bodyHTML string, gallery []GalleryImage) ProjectDetail {
	if gallery == nil {
		gallery = []GalleryImage{}
	}
	return ProjectDetail{
		Title:               p.Title,
		Slug:                p.Slug,
		Overview:            p.Overview,
		Category:            p.Category,
		Tags:                nonNil(p.Tags),
		GithubLink:          p.GithubLink,
		DemoLink:            p.DemoLink,
		Problem:             p.Problem,
		Solution:            p.Solution,
		Features:            nonNil(p.Features),
		TechnicalHighlights: nonNil(p.TechnicalHighlights),
		Gallery:             gallery,
		BodyHTML:            bodyHTML,
		Date:                formatDate(p.CreatedAt, "January 2, 2006"),
	}
}

// NewPostDetail maps a raw Post onto its detail view.
func NewPostDetail(p Post, bodyHTML string, gallery []GalleryImage) PostDetail {
	date := p.PublishedAt
	if date == "" {
		date = p.CreatedAt
	}
	if gallery == nil {
		gallery = []GalleryImage{}
	}
	return PostDetail{
		Title:          p.Title,
		Slug:           p.Slug,
		Overview:       p.Overview,
		Tags:           nonNil(p.Tags),
		Date:           formatDate(date, "January 2, 2006"),
		ReadingTime:    DefaultReadingTime,
		Gallery:        gallery,
		BodyHTML:       bodyHTML,
		RelatedProject: p.RelatedProject,
	}
}

func capTags(tags []string, max int) []string {
	if tags == nil {
		return []string{}
	}
	if len(tags) > max {
		tags = tags[:max]
	}
	return tags
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// formatDate renders an RFC 3339 timestamp with the given layout. Unparseable
// input yields an empty string rather than a broken date on the page.
func formatDate(raw, layout string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return t.Format(layout)
}
