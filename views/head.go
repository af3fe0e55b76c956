package views

import (
	"bytes"
	"encoding/json"
	"html"

	"github.com/lukewestby/bytes.zone/content"
)

// Tag is one head meta tag. Exactly one of Name or Property is set,
// matching the name= / property= split between plain meta and OpenGraph.
type Tag struct {
	Name     string
	Property string
	Content  string
}

// HeadTags builds the rich-card tag set for a page: site name, fallback
// image, title, a description (the page summary when present, else the site
// tagline), and the page-type classification — "article" for posts and
// talks, "website" for everything else. Pure: derived entirely from the
// already-decoded metadata.
func HeadTags(cfg SiteConfig, meta content.Metadata, pageURL string) []Tag {
	description := cfg.Tagline
	if summary, ok := meta.Summary(); ok && summary != "" {
		description = summary
	}

	ogType := "website"
	switch meta.Kind() {
	case content.KindPost, content.KindTalk:
		ogType = "article"
	}

	return []Tag{
		{Name: "description", Content: description},
		{Property: "og:site_name", Content: cfg.Name},
		{Property: "og:type", Content: ogType},
		{Property: "og:title", Content: meta.Title()},
		{Property: "og:description", Content: description},
		{Property: "og:url", Content: pageURL},
		{Property: "og:image", Content: cfg.Image},
		{Name: "twitter:card", Content: "summary"},
		{Name: "twitter:title", Content: meta.Title()},
		{Name: "twitter:description", Content: description},
		{Name: "twitter:image", Content: cfg.Image},
	}
}

func writeTags(buf *bytes.Buffer, tags []Tag) {
	for _, t := range tags {
		if t.Property != "" {
			buf.WriteString("<meta property=\"" + html.EscapeString(t.Property) + "\" content=\"" + html.EscapeString(t.Content) + "\"/>")
			continue
		}
		buf.WriteString("<meta name=\"" + html.EscapeString(t.Name) + "\" content=\"" + html.EscapeString(t.Content) + "\"/>")
	}
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
	}
	if cfg.Tagline != "" {
		data["description"] = cfg.Tagline
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ArticleJsonLD produces a Schema.org Article JSON-LD block for a post or
// talk.
func ArticleJsonLD(cfg SiteConfig, doc content.Document) string {
	pageURL := PageURL(cfg, doc.Path)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      doc.Meta.Title(),
		"datePublished": doc.Meta.PublishedAt().Format("2006-01-02"),
		"url":           pageURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   pageURL,
		},
	}
	if summary, ok := doc.Meta.Summary(); ok && summary != "" {
		data["description"] = summary
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
