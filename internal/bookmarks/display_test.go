package bookmarks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []Node {
	return []Node{
		{ID: "1", Title: "Bar", Children: []Node{
			{ID: "10", Title: "Go", URL: "https://go.dev/"},
			{ID: "11", Title: "Work", Children: []Node{
				{ID: "12", Title: "CI", URL: "https://ci.example.com/builds"},
			}},
			{ID: "13", Title: "Empty", Children: []Node{}},
		}},
		{ID: "2", Title: "Top", URL: "https://example.com/"},
	}
}

func TestFlattenClosedByDefault(t *testing.T) {
	rows := Flatten(sampleTree(), nil, DefaultFaviconEndpoint)

	require.Len(t, rows, 2)
	assert.True(t, rows[0].Folder)
	assert.False(t, rows[0].Expanded)
	assert.Equal(t, "Bar", rows[0].Title)
	assert.False(t, rows[1].Folder)
	assert.Equal(t, "https://example.com/", rows[1].URL)
}

func TestFlattenExpandsIndependently(t *testing.T) {
	expanded := map[string]bool{"1": true}
	rows := Flatten(sampleTree(), expanded, DefaultFaviconEndpoint)

	// Bar open: its three children appear, Work stays closed.
	titles := make([]string, 0, len(rows))
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Bar", "Go", "Work", "Empty", "Top"}, titles)

	for _, r := range rows {
		if r.Title == "Go" {
			assert.Equal(t, 1, r.Depth)
			assert.True(t, strings.Contains(r.Favicon, "domain=go.dev"))
		}
		if r.Title == "Empty" {
			assert.True(t, r.Folder, "empty folder still renders as a folder")
		}
	}

	// Opening the nested folder does not touch sibling state.
	expanded["11"] = true
	rows = Flatten(sampleTree(), expanded, DefaultFaviconEndpoint)
	titles = titles[:0]
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Bar", "Go", "Work", "CI", "Empty", "Top"}, titles)
}

func TestFlattenIsIdempotent(t *testing.T) {
	expanded := map[string]bool{"1": true, "11": true}
	first := Flatten(sampleTree(), expanded, DefaultFaviconEndpoint)
	second := Flatten(sampleTree(), expanded, DefaultFaviconEndpoint)
	assert.Equal(t, first, second)
}

func TestFlattenEmptyInput(t *testing.T) {
	assert.Empty(t, Flatten(nil, nil, DefaultFaviconEndpoint))
}

func TestFaviconURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"regular url", "https://go.dev/doc", DefaultFaviconEndpoint + "?domain=go.dev&sz=16"},
		{"not a url", "not a url", PlaceholderFavicon},
		{"empty", "", PlaceholderFavicon},
		{"scheme only", "https://", PlaceholderFavicon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FaviconURL(DefaultFaviconEndpoint, tt.in))
		})
	}
}
