package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func postTitles(posts []Post) []string {
	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	return titles
}

func TestFilterPosts_MatchesTitleCaseInsensitively(t *testing.T) {
	posts := []Post{
		{Title: "Intro to CNNs"},
		{Title: "Linear Algebra Basics"},
	}
	assert.Equal(t, []string{"Intro to CNNs"}, postTitles(FilterPosts(posts, "cnn")))
	assert.Equal(t, []string{"Intro to CNNs"}, postTitles(FilterPosts(posts, "CNN")))
}

func TestFilterPosts_MatchesTags(t *testing.T) {
	posts := []Post{
		{Title: "Weekly notes", Tags: []string{"Reinforcement Learning"}},
		{Title: "Other notes", Tags: []string{"Tutorial"}},
	}
	assert.Equal(t, []string{"Weekly notes"}, postTitles(FilterPosts(posts, "reinforce")))
}

func TestFilterPosts_BlankQueryIsIdentity(t *testing.T) {
	posts := []Post{{Title: "B"}, {Title: "A"}, {Title: "C"}}
	assert.Equal(t, posts, FilterPosts(posts, ""))
	assert.Equal(t, posts, FilterPosts(posts, "   "))
}

func TestFilterPosts_Idempotent(t *testing.T) {
	posts := []Post{
		{Title: "Intro to CNNs"},
		{Title: "Linear Algebra Basics"},
		{Title: "CNN architectures", Tags: []string{"deep learning"}},
	}
	once := FilterPosts(posts, "cnn")
	twice := FilterPosts(once, "cnn")
	assert.Equal(t, once, twice)
}

func TestFilterPosts_NoMatchesIsEmptyNotNil(t *testing.T) {
	filtered := FilterPosts([]Post{{Title: "Intro"}}, "zzz")
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterProjects(t *testing.T) {
	projects := []Project{
		{Title: "Drone Tracker", Tags: []string{"OpenCV"}},
		{Title: "Blog Engine", Tags: []string{"Go"}},
	}
	assert.Len(t, FilterProjects(projects, "opencv"), 1)
	assert.Len(t, FilterProjects(projects, "blog"), 1)
	assert.Len(t, FilterProjects(projects, ""), 2)
}
