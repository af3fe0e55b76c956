package views

import (
	"context"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/lukewestby/bytes.zone/content"
)

func testConfig() SiteConfig {
	return SiteConfig{
		Name:    "bytes.zone",
		URL:     "https://bytes.zone",
		Tagline: "small thoughts about code",
		Author:  "Luke Westby",
		License: "Content licensed CC BY-NC-SA 4.0",
		Image:   "https://bytes.zone/public/card.png",
		Nav: []NavLink{
			{Label: "Home", Route: "/"},
			{Label: "Posts", Route: "/posts/"},
			{Label: "Talks", Route: "/talks/"},
		},
	}
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return tm
}

func TestRenderPostShowsDate(t *testing.T) {
	page := content.Document{
		Path: "/posts/hello/",
		Meta: content.Post("Hello", "a greeting", date(t, "2023-06-01")),
		Body: template.HTML("<p>hi</p>"),
	}
	doc := Render(testConfig(), nil, page)
	if doc.Title != "Hello" {
		t.Errorf("Title = %q, want %q", doc.Title, "Hello")
	}
	out := renderString(t, doc.Body)
	if !strings.Contains(out, "<h1>Hello</h1>") {
		t.Errorf("missing heading: %s", out)
	}
	if !strings.Contains(out, "June 1, 2023") {
		t.Errorf("missing formatted publish date: %s", out)
	}
	if !strings.Contains(out, "<p>hi</p>") {
		t.Errorf("missing body: %s", out)
	}
}

func TestRenderTalkShowsEvent(t *testing.T) {
	page := content.Document{
		Path: "/talks/systems/",
		Meta: content.Talk("Systems", "Strange Loop", date(t, "2021-09-14")),
		Body: template.HTML("<p>slides</p>"),
	}
	out := renderString(t, Render(testConfig(), nil, page).Body)
	if !strings.Contains(out, "Strange Loop") {
		t.Errorf("missing event name: %s", out)
	}
}

func TestRenderEscapesTitles(t *testing.T) {
	page := content.Document{
		Path: "/posts/x/",
		Meta: content.Post("<script>alert(1)</script>", "", date(t, "2023-01-01")),
		Body: template.HTML(""),
	}
	out := renderString(t, Render(testConfig(), nil, page).Body)
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Errorf("title not escaped: %s", out)
	}
}

func TestRenderIndexFiltersAndSorts(t *testing.T) {
	index := []content.Document{
		{Path: "/posts/old/", Meta: content.Post("Old Post", "", date(t, "2020-01-01"))},
		{Path: "/talks/only-talk/", Meta: content.Talk("Only Talk", "Conf", date(t, "2022-01-01"))},
		{Path: "/posts/new/", Meta: content.Post("New Post", "with summary", date(t, "2024-01-01"))},
		{Path: "/", Meta: content.HomePage("bytes.zone")},
	}
	page := content.Document{Path: "/posts/", Meta: content.Index(content.Posts)}
	doc := Render(testConfig(), index, page)
	if doc.Title != "Posts" {
		t.Errorf("Title = %q, want %q", doc.Title, "Posts")
	}
	out := renderString(t, doc.Body)
	if strings.Contains(out, "Only Talk") {
		t.Errorf("posts index must not list talks: %s", out)
	}
	if strings.Contains(out, "bytes.zone</a>") {
		t.Errorf("posts index must not list the homepage: %s", out)
	}
	newIdx := strings.Index(out, "New Post")
	oldIdx := strings.Index(out, "Old Post")
	if newIdx < 0 || oldIdx < 0 || newIdx > oldIdx {
		t.Errorf("listing not newest-first: %s", out)
	}
	if !strings.Contains(out, "with summary") {
		t.Errorf("summary missing from listing: %s", out)
	}
}

func TestShellMarksActiveNavLink(t *testing.T) {
	page := content.Document{
		Path: "/posts/hello/",
		Meta: content.Post("Hello", "", date(t, "2023-06-01")),
		Body: template.HTML("<p>hi</p>"),
	}
	out := renderString(t, PageHTML(testConfig(), nil, page))
	if !strings.Contains(out, `class="nav-link active" href="/posts/"`) {
		t.Errorf("posts nav link should be active on a post page: %s", out)
	}
	if strings.Contains(out, `class="nav-link active" href="/talks/"`) {
		t.Error("talks nav link must not be active on a post page")
	}
	if strings.Contains(out, `class="nav-link active" href="/"`) {
		t.Error("home nav link must not be active off the home route")
	}
}

func TestShellOverlayOnlyOnHomePage(t *testing.T) {
	home := content.Document{Path: "/", Meta: content.HomePage("bytes.zone"), Body: template.HTML("<p>hi</p>")}
	post := content.Document{
		Path: "/posts/hello/",
		Meta: content.Post("Hello", "", date(t, "2023-06-01")),
		Body: template.HTML("<p>hi</p>"),
	}
	if out := renderString(t, PageHTML(testConfig(), nil, home)); !strings.Contains(out, `id="fireworks"`) {
		t.Error("home page should mount the fireworks overlay")
	}
	if out := renderString(t, PageHTML(testConfig(), nil, post)); strings.Contains(out, `id="fireworks"`) {
		t.Error("non-home pages must not mount the fireworks overlay")
	}
}

func TestHeadTagsClassification(t *testing.T) {
	cfg := testConfig()
	cases := []struct {
		name string
		meta content.Metadata
		want string
	}{
		{"post", content.Post("a", "", time.Now()), "article"},
		{"talk", content.Talk("a", "e", time.Now()), "article"},
		{"page", content.Page("a", "", time.Now()), "website"},
		{"homepage", content.HomePage("a"), "website"},
		{"index", content.Index(content.Talks), "website"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tags := HeadTags(cfg, tc.meta, "https://bytes.zone/x/")
			if got := tagValue(tags, "og:type"); got != tc.want {
				t.Errorf("og:type = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHeadTagsDescriptionFallsBackToTagline(t *testing.T) {
	cfg := testConfig()
	withSummary := HeadTags(cfg, content.Post("a", "the summary", time.Now()), "u")
	if got := tagValue(withSummary, "description"); got != "the summary" {
		t.Errorf("description = %q, want the summary", got)
	}
	without := HeadTags(cfg, content.Post("a", "", time.Now()), "u")
	if got := tagValue(without, "description"); got != cfg.Tagline {
		t.Errorf("description = %q, want the site tagline", got)
	}
}

func tagValue(tags []Tag, key string) string {
	for _, t := range tags {
		if t.Name == key || t.Property == key {
			return t.Content
		}
	}
	return ""
}
