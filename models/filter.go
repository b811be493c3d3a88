package models

import "strings"

// FilterPosts keeps the posts whose title or any tag contains the query as a
// case-insensitive substring. A blank query returns the input unchanged.
func FilterPosts(posts []Post, query string) []Post {
	if strings.TrimSpace(query) == "" {
		return posts
	}
	q := strings.ToLower(query)
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if matchesQuery(p.Title, p.Tags, q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterProjects is the project-side counterpart of FilterPosts.
func FilterProjects(projects []Project, query string) []Project {
	if strings.TrimSpace(query) == "" {
		return projects
	}
	q := strings.ToLower(query)
	filtered := make([]Project, 0, len(projects))
	for _, p := range projects {
		if matchesQuery(p.Title, p.Tags, q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matchesQuery(title string, tags []string, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(title), loweredQuery) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}
