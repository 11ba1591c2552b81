// Package seo synchronizes site metadata into a document head model. The
// injector is idempotent: applying the same settings twice leaves exactly one
// tag per name with the latest content, and exactly one structured-data
// block.
package seo

import (
	"fmt"
	"html"
	"strings"

	"github.com/ahqjohn/portfolio-backend/models"
)

// Settings is the metadata mapping the injector reads. Empty fields are
// skipped; a missing settings document falls back to DefaultSettings.
type Settings struct {
	HomeTitle       string `json:"homeTitle"`
	HomeDescription string `json:"homeDescription"`
	HomeKeywords    string `json:"homeKeywords"`
	OGTitle         string `json:"ogTitle"`
	OGDescription   string `json:"ogDescription"`
	OGImage         string `json:"ogImage"`
	SchemaData      string `json:"schemaData,omitempty"`
}

// FromModel converts a stored settings document into injector settings.
func FromModel(m *models.SEOSettings) Settings {
	return Settings{
		HomeTitle:       m.HomeTitle,
		HomeDescription: m.HomeDescription,
		HomeKeywords:    m.HomeKeywords,
		OGTitle:         m.OGTitle,
		OGDescription:   m.OGDescription,
		OGImage:         m.OGImage,
		SchemaData:      string(m.SchemaData),
	}
}

// DefaultSettings is the hardcoded fallback used when no settings document
// has been saved.
func DefaultSettings() Settings {
	return Settings{
		HomeTitle:       "Md. Ashfaqul Haque - Senior AI/ML Engineer | Computer Vision Expert",
		HomeDescription: "Senior AI/ML Engineer specializing in Computer Vision, Deep Learning, Edge Deployment. 15,000+ annotations, 9+ research publications, 20+ industrial projects. Available for consulting and PhD collaboration.",
		HomeKeywords:    "AI engineer Bangladesh, ML engineer, computer vision expert, deep learning, YOLO, PyTorch, TensorFlow, edge AI deployment, data annotation, research collaboration, PhD opportunities, AI consulting, Bengali ANPR, container tracking, industrial AI",
		OGTitle:         "Md. Ashfaqul Haque - AI/ML Engineer Portfolio",
		OGDescription:   "Experienced AI/ML Engineer with expertise in computer vision, deep learning, and real-world AI deployments. Open for projects and research collaboration.",
		OGImage:         "https://yourdomain.com/og-image.jpg",
	}
}

// MetaTag is one head element keyed by its attribute ("name" or "property")
// and name.
type MetaTag struct {
	Attribute string `json:"attribute"`
	Name      string `json:"name"`
	Content   string `json:"content"`
}

type tagKey struct {
	attribute string
	name      string
}

// Head models the mutable document head state the injector targets.
type Head struct {
	Title string

	order []tagKey
	tags  map[tagKey]string

	structuredData string
}

func NewHead() *Head {
	return &Head{tags: make(map[tagKey]string)}
}

// setTag finds-or-creates the tag for (attribute, name) and sets its
// content. Empty content is skipped, matching the injector contract.
func (h *Head) setTag(attribute, name, content string) {
	if content == "" {
		return
	}

	key := tagKey{attribute: attribute, name: name}
	if _, exists := h.tags[key]; !exists {
		h.order = append(h.order, key)
	}
	h.tags[key] = content
}

// SetMeta sets a name-attributed meta tag.
func (h *Head) SetMeta(name, content string) {
	h.setTag("name", name, content)
}

// SetMetaProperty sets a property-attributed meta tag (Open Graph).
func (h *Head) SetMetaProperty(name, content string) {
	h.setTag("property", name, content)
}

// SetStructuredData replaces the single ld+json script block.
func (h *Head) SetStructuredData(schema string) {
	if schema == "" {
		return
	}
	h.structuredData = schema
}

// MetaTags returns the head's meta tags in insertion order.
func (h *Head) MetaTags() []MetaTag {
	tags := make([]MetaTag, 0, len(h.order))
	for _, key := range h.order {
		tags = append(tags, MetaTag{
			Attribute: key.attribute,
			Name:      key.name,
			Content:   h.tags[key],
		})
	}
	return tags
}

// StructuredData returns the current ld+json block, empty when unset.
func (h *Head) StructuredData() string {
	return h.structuredData
}

// Apply synchronizes settings into the head. pageURL feeds the og:url tag.
func Apply(h *Head, s Settings, pageURL string) {
	if s.HomeTitle != "" {
		h.Title = s.HomeTitle
	}

	h.SetMeta("description", s.HomeDescription)
	h.SetMeta("keywords", s.HomeKeywords)

	ogTitle := s.OGTitle
	if ogTitle == "" {
		ogTitle = s.HomeTitle
	}
	ogDescription := s.OGDescription
	if ogDescription == "" {
		ogDescription = s.HomeDescription
	}

	h.SetMetaProperty("og:title", ogTitle)
	h.SetMetaProperty("og:description", ogDescription)
	h.SetMetaProperty("og:image", s.OGImage)
	h.SetMetaProperty("og:type", "website")
	h.SetMetaProperty("og:url", pageURL)

	h.SetMeta("twitter:card", "summary_large_image")
	h.SetMeta("twitter:title", ogTitle)
	h.SetMeta("twitter:description", ogDescription)
	h.SetMeta("twitter:image", s.OGImage)

	h.SetStructuredData(s.SchemaData)
}

// Render serializes the head into HTML. Output is deterministic for a given
// sequence of Apply calls.
func (h *Head) Render() string {
	var b strings.Builder

	if h.Title != "" {
		fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(h.Title))
	}

	for _, tag := range h.MetaTags() {
		fmt.Fprintf(&b, "<meta %s=\"%s\" content=\"%s\">\n",
			tag.Attribute, html.EscapeString(tag.Name), html.EscapeString(tag.Content))
	}

	if h.structuredData != "" {
		fmt.Fprintf(&b, "<script type=\"application/ld+json\">%s</script>\n", h.structuredData)
	}

	return b.String()
}
