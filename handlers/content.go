package handlers

import (
	"errors"
	"log"
	"net/http"

	"portfolio/models"
	"portfolio/sanity"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const galleryImageWidth = 1400
const galleryImageQuality = 90

// Homepage keeps the three newest featured projects and two newest articles.
const (
	homeProjectCount = 3
	homeArticleCount = 2
)

func projectCardFields() []string {
	return []string{
		"_id", "title", sanity.Alias("slug", "slug.current"),
		"overview", "tags", "category", "_createdAt",
	}
}

func articleCardFields() []string {
	return []string{
		"_id", "title", sanity.Alias("slug", "slug.current"),
		"overview", "publishedAt", "tags", "_createdAt",
		sanity.Deref("relatedProject", "title", sanity.Alias("slug", "slug.current"), "category"),
		sanity.Literal("readingTime", models.DefaultReadingTime),
	}
}

// Home serves the landing page payload: featured projects and the latest
// articles, fetched concurrently.
func (h *Handler) Home(c *gin.Context) {
	var (
		projects []models.Project
		posts    []models.Post
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		q := sanity.NewQuery("project").
			EqBool("isFeatured", true).
			OrderBy("_createdAt", true).
			Slice(0, homeProjectCount).
			Project(projectCardFields()...)
		return h.store.Fetch(ctx, q, nil, &projects)
	})
	g.Go(func() error {
		q := sanity.NewQuery("post").
			OrderBy("_createdAt", true).
			Slice(0, homeArticleCount).
			Project(articleCardFields()...)
		return h.store.Fetch(ctx, q, nil, &posts)
	})
	if err := g.Wait(); err != nil {
		log.Printf("Home fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projectCards(projects),
		"writings": articleCards(posts),
	})
}

// ListProjects serves the project archive, newest first, optionally filtered
// by the q search parameter.
func (h *Handler) ListProjects(c *gin.Context) {
	var projects []models.Project
	q := sanity.NewQuery("project").
		OrderBy("_createdAt", true).
		Project(projectCardFields()...)
	if err := h.store.Fetch(c.Request.Context(), q, nil, &projects); err != nil {
		log.Printf("ListProjects fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	projects = models.FilterProjects(projects, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"projects": projectCards(projects)})
}

// GetProject serves one case study by slug, together with the articles that
// reference it. Both fetches run concurrently; an unknown slug is a 404,
// never an empty page.
func (h *Handler) GetProject(c *gin.Context) {
	slug := c.Param("slug")
	params := map[string]any{"slug": slug}

	var (
		project models.Project
		related []models.Post
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		q := sanity.NewQuery("project").
			Eq("slug.current", "slug").
			First().
			Project("_id", "title", sanity.Alias("slug", "slug.current"),
				"overview", "category", "tags", "body", "githubLink", "demoLink",
				"problem", "solution", "features", "technicalHighlights",
				"images[]{ _key, asset, caption }", "_createdAt")
		return h.store.Fetch(ctx, q, params, &project)
	})
	g.Go(func() error {
		q := sanity.NewQuery("post").
			Eq("relatedProject->slug.current", "slug").
			OrderBy("publishedAt", true).
			Project(articleCardFields()...)
		return h.store.Fetch(ctx, q, params, &related)
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, sanity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Printf("GetProject fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	detail := models.NewProjectDetail(project, h.renderer.Render(project.Body), h.gallery(project.Images))
	c.JSON(http.StatusOK, gin.H{
		"project":         detail,
		"relatedArticles": articleCards(related),
	})
}

// ListWritings serves the full article index, newest first, optionally
// filtered by the q search parameter.
func (h *Handler) ListWritings(c *gin.Context) {
	var posts []models.Post
	q := sanity.NewQuery("post").
		OrderBy("publishedAt", true).
		Project(articleCardFields()...)
	if err := h.store.Fetch(c.Request.Context(), q, nil, &posts); err != nil {
		log.Printf("ListWritings fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch writings"})
		return
	}

	posts = models.FilterPosts(posts, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"writings": articleCards(posts)})
}

// GetWriting serves one article by slug with its body rendered to HTML and
// its related project dereferenced.
func (h *Handler) GetWriting(c *gin.Context) {
	slug := c.Param("slug")

	var post models.Post
	q := sanity.NewQuery("post").
		Eq("slug.current", "slug").
		First().
		Project("_id", "title", sanity.Alias("slug", "slug.current"),
			"overview", "publishedAt", "tags", "body",
			"images[]{ _key, asset, caption }",
			sanity.Deref("relatedProject", "title", sanity.Alias("slug", "slug.current"), "category"),
			"_createdAt")
	err := h.store.Fetch(c.Request.Context(), q, map[string]any{"slug": slug}, &post)
	if err != nil {
		if errors.Is(err, sanity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		log.Printf("GetWriting fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}

	detail := models.NewPostDetail(post, h.renderer.Render(post.Body), h.gallery(post.Images))
	c.JSON(http.StatusOK, gin.H{"post": detail})
}

// gallery resolves image references to CDN URLs. Entries whose reference is
// missing or malformed are dropped.
func (h *Handler) gallery(images []models.Image) []models.GalleryImage {
	gallery := make([]models.GalleryImage, 0, len(images))
	for _, img := range images {
		url := h.store.ImageURL(img.Asset.Ref, galleryImageWidth, galleryImageQuality)
		if url == "" {
			continue
		}
		gallery = append(gallery, models.GalleryImage{URL: url, Caption: img.Caption})
	}
	return gallery
}

func projectCards(projects []models.Project) []models.ProjectCard {
	cards := make([]models.ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, models.NewProjectCard(p))
	}
	return cards
}

func articleCards(posts []models.Post) []models.ArticleCard {
	cards := make([]models.ArticleCard, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, models.NewArticleCard(p))
	}
	return cards
}
