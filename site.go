// Package byteszone builds one personal website: it loads markdown content
// with typed frontmatter, renders each page through the views package, and
// writes a static tree plus feed and sitemap. The serve command wraps the
// output in a dev server with the usual middleware.
package byteszone

import (
	"github.com/lukewestby/bytes.zone/content"
)

// Site wires the configuration and the loaded document set together.
type Site struct {
	Config SiteConfig
	Docs   []content.Document
}

// New creates a Site with defaults applied.
func New(cfg SiteConfig, opts ...Option) *Site {
	cfg.setDefaults()
	s := &Site{Config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and decodes every content document. A single malformed page
// fails the whole load; partial sites are never built.
func (s *Site) Load() error {
	docs, err := content.LoadDir(s.Config.ContentDir)
	if err != nil {
		return err
	}
	s.Docs = docs
	return nil
}
