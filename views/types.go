// Package views renders pages as templ components: shared chrome, one body
// composition per metadata variant, and the per-page head tag set.
package views

import "github.com/a-h/templ"

// SiteConfig holds site-wide settings every template reads so nothing is
// hardcoded in the chrome.
type SiteConfig struct {
	Name    string // site title shown in the header
	URL     string // canonical base URL
	Tagline string // fallback description for pages without a summary
	Author  string // author name for JSON-LD
	License string // footer license text
	Image   string // absolute URL of the fallback social card image
	Nav     []NavLink

	// FireworksSeed seeds the home page animation session; the overlay
	// mount carries it so a show can be replayed exactly.
	FireworksSeed int64
}

// NavLink is one header navigation entry.
type NavLink struct {
	Label string
	Route string
}

// Document is a rendered page: the title for the <title> tag and the body
// component spliced into the chrome.
type Document struct {
	Title string
	Body  templ.Component
}
