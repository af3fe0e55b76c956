package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Document is one loaded page: its site route, decoded metadata, and the
// rendered HTML body.
type Document struct {
	Path string // route with leading and trailing slash, e.g. "/posts/hello/"
	Meta Metadata
	Body template.HTML
}

// yamlFormat parses "---"-delimited frontmatter with goccy/go-yaml so the
// raw map reaches Decode untouched.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// LoadDir walks dir for markdown files and loads each into a Document.
// Any decode or render failure aborts the load naming the file; a page with
// malformed metadata must never reach the build output.
func LoadDir(dir string) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		doc, err := LoadFile(path, RouteFor(rel))
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", dir, err)
	}
	return docs, nil
}

// LoadFile reads one markdown file, decodes its frontmatter, and renders its
// body.
func LoadFile(path, route string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("content: read %s: %w", path, err)
	}

	raw := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(b), &raw, yamlFormat)
	if err != nil {
		return Document{}, fmt.Errorf("content: %s: parse frontmatter: %w", path, err)
	}

	meta, err := Decode(raw)
	if err != nil {
		return Document{}, fmt.Errorf("content: %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Document{}, fmt.Errorf("content: %s: render body: %w", path, err)
	}

	return Document{Path: route, Meta: meta, Body: template.HTML(buf.String())}, nil
}

// RouteFor maps a content-relative file path to its site route:
// "index.md" -> "/", "posts/index.md" -> "/posts/", "posts/foo.md" ->
// "/posts/foo/".
func RouteFor(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	if rel == "index" {
		return "/"
	}
	rel = strings.TrimSuffix(rel, "/index")
	return "/" + strings.Trim(rel, "/") + "/"
}

// SortNewestFirst orders documents by publish time descending. Documents
// without a publish time (homepage, indexes) sink to the end.
func SortNewestFirst(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Meta.PublishedAt().After(docs[j].Meta.PublishedAt())
	})
}

// OfKind returns the documents whose metadata is the given kind, preserving
// order.
func OfKind(docs []Document, kind Kind) []Document {
	var out []Document
	for _, d := range docs {
		if d.Meta.Kind() == kind {
			out = append(out, d)
		}
	}
	return out
}
