package byteszone

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lukewestby/bytes.zone/views"
)

// SiteConfig holds all configuration for a site build.
type SiteConfig struct {
	Name    string // Site name (default "bytes.zone")
	URL     string // Canonical URL (default "http://localhost:8000")
	Tagline string // Fallback meta description
	Author  string // Author name for JSON-LD
	License string // Footer license text
	Image   string // Absolute URL of the fallback social card image

	ContentDir string // Markdown source directory (default "content")
	StaticDir  string // Static asset directory (default "static")
	OutputDir  string // Build output directory (default "public")

	NavRoutes []string // Header nav routes in order (default home/posts/talks)

	FireworksSeed int64 // Seed for the home page animation session
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "bytes.zone"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8000"
	}
	if c.License == "" {
		c.License = "Content licensed CC BY-NC-SA 4.0"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if len(c.NavRoutes) == 0 {
		c.NavRoutes = []string{"/", "/posts/", "/talks/"}
	}
}

var navCaser = cases.Title(language.English)

// navLinks derives labeled nav entries from the configured routes: "/" is
// Home, everything else takes its title-cased first segment.
func (c SiteConfig) navLinks() []views.NavLink {
	links := make([]views.NavLink, 0, len(c.NavRoutes))
	for _, route := range c.NavRoutes {
		label := "Home"
		if route != "/" {
			label = navCaser.String(strings.Trim(route, "/"))
		}
		links = append(links, views.NavLink{Label: label, Route: route})
	}
	return links
}

// viewConfig projects the site config into what the templates need.
func (c SiteConfig) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:          c.Name,
		URL:           c.URL,
		Tagline:       c.Tagline,
		Author:        c.Author,
		License:       c.License,
		Image:         c.Image,
		Nav:           c.navLinks(),
		FireworksSeed: c.FireworksSeed,
	}
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithOutputDir overrides the build output directory.
func WithOutputDir(dir string) Option {
	return func(s *Site) {
		s.Config.OutputDir = dir
	}
}

// WithFireworksSeed pins the animation session seed, mostly for reproducing
// a specific show.
func WithFireworksSeed(seed int64) Option {
	return func(s *Site) {
		s.Config.FireworksSeed = seed
	}
}
