package byteszone

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestBuildEndToEnd(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	staticDir := filepath.Join(root, "static")
	outDir := filepath.Join(root, "public")

	writeFile(t, filepath.Join(contentDir, "index.md"), `---
type: homepage
title: bytes.zone
---
Welcome.
`)
	writeFile(t, filepath.Join(contentDir, "posts", "index.md"), `---
type: index
category: posts
---
`)
	writeFile(t, filepath.Join(contentDir, "posts", "hello.md"), `---
type: post
title: Hello
summary: a greeting
published: "2023-06-01"
---
Body text.
`)
	writeFile(t, filepath.Join(staticDir, "styles.css"), "body{}")

	site := New(SiteConfig{
		Name:       "bytes.zone",
		URL:        "https://bytes.zone",
		Tagline:    "small thoughts about code",
		ContentDir: contentDir,
		StaticDir:  staticDir,
	}, WithOutputDir(outDir))

	if err := site.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	home := readFile(t, filepath.Join(outDir, "index.html"))
	if !strings.Contains(home, `id="fireworks"`) {
		t.Error("home page should mount the fireworks overlay")
	}
	if !strings.Contains(home, "<title>bytes.zone</title>") {
		t.Errorf("home title wrong: %s", home)
	}

	post := readFile(t, filepath.Join(outDir, "posts", "hello", "index.html"))
	if !strings.Contains(post, `property="og:type" content="article"`) {
		t.Errorf("post head tags missing article classification: %s", post)
	}
	if !strings.Contains(post, "June 1, 2023") {
		t.Errorf("post missing formatted date: %s", post)
	}

	index := readFile(t, filepath.Join(outDir, "posts", "index.html"))
	if !strings.Contains(index, "Hello") {
		t.Errorf("posts index missing the post: %s", index)
	}

	if _, err := os.Stat(filepath.Join(outDir, "public", "styles.css")); err != nil {
		t.Errorf("static asset not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "feed.xml")); err != nil {
		t.Errorf("feed not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "sitemap.xml")); err != nil {
		t.Errorf("sitemap not written: %v", err)
	}
}

func TestBuildFailsOnMalformedFrontmatter(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	writeFile(t, filepath.Join(contentDir, "bad.md"), `---
type: mystery
title: Bad
---
`)
	site := New(SiteConfig{ContentDir: contentDir}, WithOutputDir(filepath.Join(root, "public")))
	err := site.Build()
	if err == nil {
		t.Fatal("Build should fail on an unknown page type")
	}
	if !strings.Contains(err.Error(), `"mystery"`) {
		t.Errorf("error %q does not name the unknown type", err)
	}
}

func TestNavLinksDeriveLabels(t *testing.T) {
	cfg := testSiteConfig()
	links := cfg.navLinks()
	if len(links) != 3 {
		t.Fatalf("got %d nav links, want 3", len(links))
	}
	want := []string{"Home", "Posts", "Talks"}
	for i, w := range want {
		if links[i].Label != w {
			t.Errorf("nav[%d] = %q, want %q", i, links[i].Label, w)
		}
	}
}
