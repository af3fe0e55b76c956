package views

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PageURL returns the canonical URL for a site route.
func PageURL(cfg SiteConfig, route string) string {
	segments := strings.FieldsFunc(route, func(r rune) bool { return r == '/' })
	return buildURL(cfg.URL, segments...)
}

// FormatDate renders a publish date the way the chrome shows it.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// navActive reports whether a nav link should be marked for the current
// route. Links match on their first path segment, so "/posts/" stays lit on
// "/posts/some-post/"; the home link matches only the home route itself.
func navActive(link, current string) bool {
	if link == "/" {
		return current == "/"
	}
	return firstSegment(link) == firstSegment(current)
}

func firstSegment(route string) string {
	route = strings.Trim(route, "/")
	if i := strings.IndexByte(route, '/'); i >= 0 {
		return route[:i]
	}
	return route
}
