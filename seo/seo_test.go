package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySetsTags(t *testing.T) {
	head := NewHead()
	Apply(head, Settings{
		HomeTitle:       "Title",
		HomeDescription: "Description",
		HomeKeywords:    "a, b",
		OGTitle:         "OG Title",
		OGDescription:   "OG Description",
		OGImage:         "https://example.com/og.jpg",
	}, "https://example.com/")

	assert.Equal(t, "Title", head.Title)

	tags := map[string]string{}
	for _, tag := range head.MetaTags() {
		tags[tag.Attribute+"/"+tag.Name] = tag.Content
	}

	assert.Equal(t, "Description", tags["name/description"])
	assert.Equal(t, "OG Title", tags["property/og:title"])
	assert.Equal(t, "website", tags["property/og:type"])
	assert.Equal(t, "https://example.com/", tags["property/og:url"])
	assert.Equal(t, "summary_large_image", tags["name/twitter:card"])
}

func TestApplyFallsBackToHomeMetadata(t *testing.T) {
	head := NewHead()
	Apply(head, Settings{
		HomeTitle:       "Home Title",
		HomeDescription: "Home Description",
	}, "https://example.com/")

	var ogTitle, twitterDescription string
	for _, tag := range head.MetaTags() {
		switch {
		case tag.Attribute == "property" && tag.Name == "og:title":
			ogTitle = tag.Content
		case tag.Attribute == "name" && tag.Name == "twitter:description":
			twitterDescription = tag.Content
		}
	}

	assert.Equal(t, "Home Title", ogTitle)
	assert.Equal(t, "Home Description", twitterDescription)
}

func TestApplyIsIdempotent(t *testing.T) {
	settings := Settings{
		HomeTitle:       "Title",
		HomeDescription: "Description",
		OGImage:         "https://example.com/og.jpg",
		SchemaData:      `{"@type":"Person"}`,
	}

	head := NewHead()
	Apply(head, settings, "https://example.com/")
	once := head.Render()
	tagCount := len(head.MetaTags())

	Apply(head, settings, "https://example.com/")
	Apply(head, settings, "https://example.com/")

	assert.Equal(t, tagCount, len(head.MetaTags()))
	assert.Equal(t, once, head.Render())
	assert.Equal(t, 1, strings.Count(head.Render(), "application/ld+json"))
}

func TestApplyReplacesChangedContent(t *testing.T) {
	head := NewHead()
	Apply(head, Settings{HomeTitle: "Old", HomeDescription: "Old description"}, "https://example.com/")
	Apply(head, Settings{HomeTitle: "New", HomeDescription: "New description"}, "https://example.com/")

	assert.Equal(t, "New", head.Title)

	for _, tag := range head.MetaTags() {
		if tag.Attribute == "name" && tag.Name == "description" {
			assert.Equal(t, "New description", tag.Content)
			return
		}
	}
	t.Fatal("description tag not found")
}

func TestApplySkipsEmptyFields(t *testing.T) {
	head := NewHead()
	Apply(head, Settings{HomeTitle: "Title"}, "https://example.com/")

	for _, tag := range head.MetaTags() {
		assert.NotEmpty(t, tag.Content, "tag %s/%s has empty content", tag.Attribute, tag.Name)
	}
}

func TestRenderEscapesContent(t *testing.T) {
	head := NewHead()
	Apply(head, Settings{
		HomeTitle:       `Title <script>alert("x")</script>`,
		HomeDescription: `"quoted" & <angled>`,
	}, "https://example.com/")

	html := head.Render()
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&amp;")
}

func TestDefaultSettingsArePopulated(t *testing.T) {
	defaults := DefaultSettings()

	require.NotEmpty(t, defaults.HomeTitle)
	require.NotEmpty(t, defaults.HomeDescription)
	require.NotEmpty(t, defaults.HomeKeywords)
	assert.NotEmpty(t, defaults.OGTitle)
	assert.NotEmpty(t, defaults.OGImage)
}
