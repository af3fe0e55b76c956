// Package content models the site's frontmatter metadata and loads markdown
// documents from disk. Every page carries exactly one metadata variant; the
// decoder is total and fails hard on anything it does not recognize.
package content

import (
	"fmt"
	"time"
)

// Kind identifies which metadata variant a page carries.
type Kind int

const (
	KindPage Kind = iota
	KindHomePage
	KindPost
	KindTalk
	KindIndex
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindHomePage:
		return "homepage"
	case KindPost:
		return "post"
	case KindTalk:
		return "talk"
	case KindIndex:
		return "index"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Category selects which content kind an index page lists.
type Category int

const (
	Posts Category = iota
	Talks
)

// Title returns the display title for an index of this category.
func (c Category) Title() string {
	switch c {
	case Posts:
		return "Posts"
	case Talks:
		return "Talks"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Route returns the site route an index of this category lives at.
func (c Category) Route() string {
	switch c {
	case Posts:
		return "/posts/"
	case Talks:
		return "/talks/"
	}
	return "/"
}

// Kind returns the content kind a category's listing is built from.
func (c Category) Kind() Kind {
	if c == Talks {
		return KindTalk
	}
	return KindPost
}

// Epoch is the timestamp reported for variants that have no publish time.
var Epoch = time.Unix(0, 0).UTC()

// Metadata is the decoded frontmatter of a single page. The zero value is
// not valid; construct one with Decode or one of the variant constructors.
type Metadata struct {
	kind       Kind
	title      string
	summary    string
	hasSummary bool
	published  time.Time
	event      string
	category   Category
}

// Page builds generic-page metadata. An empty summary means no summary.
func Page(title, summary string, updated time.Time) Metadata {
	return Metadata{kind: KindPage, title: title, summary: summary, hasSummary: summary != "", published: updated}
}

// HomePage builds homepage metadata.
func HomePage(title string) Metadata {
	return Metadata{kind: KindHomePage, title: title}
}

// Post builds post metadata. An empty summary means no summary.
func Post(title, summary string, published time.Time) Metadata {
	return Metadata{kind: KindPost, title: title, summary: summary, hasSummary: summary != "", published: published}
}

// Talk builds talk metadata.
func Talk(title, event string, published time.Time) Metadata {
	return Metadata{kind: KindTalk, title: title, event: event, published: published}
}

// Index builds index metadata for the given category.
func Index(category Category) Metadata {
	return Metadata{kind: KindIndex, category: category}
}

// Kind reports which variant this metadata is.
func (m Metadata) Kind() Kind { return m.kind }

// Title returns the page title. Index pages take their title from the
// category they list.
func (m Metadata) Title() string {
	if m.kind == KindIndex {
		return m.category.Title()
	}
	return m.title
}

// PublishedAt returns the publish (or last-updated) time. Variants without
// one report Epoch rather than erroring; callers sorting mixed document sets
// rely on that.
func (m Metadata) PublishedAt() time.Time {
	switch m.kind {
	case KindHomePage, KindIndex:
		return Epoch
	}
	return m.published
}

// Summary returns the page summary and whether one is present. Only pages
// and posts carry summaries.
func (m Metadata) Summary() (string, bool) {
	switch m.kind {
	case KindPage, KindPost:
		return m.summary, m.hasSummary
	}
	return "", false
}

// Event returns the event a talk was given at, or "" for other variants.
func (m Metadata) Event() string { return m.event }

// Category returns the listing category of an index page. Only meaningful
// when Kind() == KindIndex.
func (m Metadata) Category() Category { return m.category }

// Decode turns a raw frontmatter map into typed metadata. It dispatches on
// the "type" discriminator and fails with an error naming the offending
// field or value; nothing is silently defaulted.
func Decode(raw map[string]any) (Metadata, error) {
	kind, err := stringField(raw, "type")
	if err != nil {
		return Metadata{}, err
	}

	switch kind {
	case "page":
		title, err := stringField(raw, "title")
		if err != nil {
			return Metadata{}, err
		}
		updated, err := timeField(raw, "updated")
		if err != nil {
			return Metadata{}, err
		}
		summary, ok, err := optionalString(raw, "summary")
		if err != nil {
			return Metadata{}, err
		}
		m := Page(title, summary, updated)
		m.hasSummary = ok
		return m, nil

	case "homepage":
		title, err := stringField(raw, "title")
		if err != nil {
			return Metadata{}, err
		}
		return HomePage(title), nil

	case "post":
		title, err := stringField(raw, "title")
		if err != nil {
			return Metadata{}, err
		}
		published, err := timeField(raw, "published")
		if err != nil {
			return Metadata{}, err
		}
		summary, ok, err := optionalString(raw, "summary")
		if err != nil {
			return Metadata{}, err
		}
		m := Post(title, summary, published)
		m.hasSummary = ok
		return m, nil

	case "talk":
		title, err := stringField(raw, "title")
		if err != nil {
			return Metadata{}, err
		}
		event, err := stringField(raw, "event")
		if err != nil {
			return Metadata{}, err
		}
		published, err := timeField(raw, "published")
		if err != nil {
			return Metadata{}, err
		}
		return Talk(title, event, published), nil

	case "index":
		category, err := stringField(raw, "category")
		if err != nil {
			return Metadata{}, err
		}
		switch category {
		case "posts":
			return Index(Posts), nil
		case "talks":
			return Index(Talks), nil
		}
		return Metadata{}, fmt.Errorf("content: unknown index category %q", category)
	}
	return Metadata{}, fmt.Errorf("content: unknown page type %q", kind)
}

func stringField(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("content: missing required field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("content: field %q: expected a string, got %v", key, v)
	}
	return s, nil
}

func optionalString(raw map[string]any, key string) (string, bool, error) {
	v, ok := raw[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("content: field %q: expected a string, got %v", key, v)
	}
	return s, true, nil
}

// timeFormats are the accepted ISO-8601 shapes, tried in order.
var timeFormats = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func timeField(raw map[string]any, key string) (time.Time, error) {
	// Some YAML decoders hand back unquoted ISO dates as time.Time already.
	if t, ok := raw[key].(time.Time); ok {
		return t, nil
	}
	s, err := stringField(raw, key)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("content: field %q: invalid timestamp %q", key, s)
}
