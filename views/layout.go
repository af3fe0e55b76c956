package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/lukewestby/bytes.zone/fireworks"
)

// Shell wraps a rendered page in the shared chrome: head with per-page meta
// tags, header with navigation, the page body, the fireworks overlay when
// the page hosts it, and the license footer.
func Shell(cfg SiteConfig, doc Document, tags []Tag, route string, overlay bool, jsonLD ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		buf.WriteString("<meta charset=\"utf-8\"/>")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\"/>")
		buf.WriteString("<title>")
		buf.WriteString(html.EscapeString(pageTitle(cfg, doc.Title)))
		buf.WriteString("</title>")
		writeTags(&buf, tags)
		buf.WriteString("<link rel=\"canonical\" href=\"" + html.EscapeString(PageURL(cfg, route)) + "\"/>")
		buf.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>")
		buf.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + html.EscapeString(cfg.Name) + "\" href=\"/feed.xml\"/>")
		for _, ld := range append([]string{WebsiteJsonLD(cfg)}, jsonLD...) {
			buf.WriteString("<script type=\"application/ld+json\">")
			buf.WriteString(ld)
			buf.WriteString("</script>")
		}
		buf.WriteString("</head><body>")
		writeHeader(&buf, cfg, route)
		if overlay {
			writeOverlay(&buf, cfg.FireworksSeed)
		}
		buf.WriteString("<main>")
		if err := doc.Body.Render(ctx, &buf); err != nil {
			return err
		}
		buf.WriteString("</main>")
		writeFooter(&buf, cfg)
		buf.WriteString("</body></html>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func pageTitle(cfg SiteConfig, title string) string {
	if title == cfg.Name || title == "" {
		return cfg.Name
	}
	return title + " | " + cfg.Name
}

func writeHeader(buf *bytes.Buffer, cfg SiteConfig, route string) {
	buf.WriteString("<header><a class=\"site-title\" href=\"/\">")
	buf.WriteString(html.EscapeString(cfg.Name))
	buf.WriteString("</a><nav>")
	for _, link := range cfg.Nav {
		class := "nav-link"
		if navActive(link.Route, route) {
			class += " active"
		}
		buf.WriteString("<a class=\"" + class + "\" href=\"" + html.EscapeString(link.Route) + "\">")
		buf.WriteString(html.EscapeString(link.Label))
		buf.WriteString("</a>")
	}
	buf.WriteString("</nav></header>")
}

// writeOverlay emits the fireworks canvas mount. The client-side driver
// reads the minimum width and session seed off the element so both live in
// exactly one place.
func writeOverlay(buf *bytes.Buffer, seed int64) {
	fmt.Fprintf(buf,
		"<canvas id=\"fireworks\" class=\"fireworks-overlay\" aria-hidden=\"true\" data-min-width=\"%d\" data-seed=\"%d\"></canvas>",
		fireworks.MinAnimateWidth, seed)
}

func writeFooter(buf *bytes.Buffer, cfg SiteConfig) {
	buf.WriteString("<footer><p>")
	buf.WriteString(html.EscapeString(cfg.License))
	buf.WriteString("</p></footer>")
}
