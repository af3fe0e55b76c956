package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/lukewestby/bytes.zone/content"
)

// Render maps a decoded page onto its title and body composition. The
// switch is exhaustive over every metadata kind; a new content type must be
// handled here or the build dies loudly rather than rendering a default.
func Render(cfg SiteConfig, index []content.Document, page content.Document) Document {
	var body templ.Component
	switch page.Meta.Kind() {
	case content.KindHomePage:
		body = templ.Raw(string(page.Body))
	case content.KindPage:
		body = article(pageHeader(page.Meta.Title()), page.Body)
	case content.KindPost:
		body = article(postHeader(page.Meta), page.Body)
	case content.KindTalk:
		body = article(talkHeader(page.Meta), page.Body)
	case content.KindIndex:
		body = listing(page.Meta.Category(), index)
	default:
		panic(fmt.Sprintf("views: unhandled page kind %v", page.Meta.Kind()))
	}
	return Document{Title: page.Meta.Title(), Body: body}
}

// article wraps a variant header and the pre-rendered body in an <article>.
func article(header templ.Component, body template.HTML) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<article>")
		if err := header.Render(ctx, &buf); err != nil {
			return err
		}
		buf.WriteString(string(body))
		buf.WriteString("</article>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func pageHeader(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>%s</h1>", html.EscapeString(title))
		return err
	})
}

// postHeader shows the title plus the formatted publish date.
func postHeader(meta content.Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<h1>%s</h1><p class=\"published\"><time datetime=\"%s\">%s</time></p>",
			html.EscapeString(meta.Title()),
			meta.PublishedAt().Format("2006-01-02"),
			html.EscapeString(FormatDate(meta.PublishedAt())),
		)
		return err
	})
}

// talkHeader shows the title plus the event the talk was given at.
func talkHeader(meta content.Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<h1>%s</h1><p class=\"event\">%s</p>",
			html.EscapeString(meta.Title()),
			html.EscapeString(meta.Event()),
		)
		return err
	})
}

// listing renders an index page: every document of the category's kind,
// newest first, linked with its publish date and summary when present.
func listing(category content.Category, index []content.Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		entries := content.OfKind(index, category.Kind())
		content.SortNewestFirst(entries)

		var buf bytes.Buffer
		buf.WriteString("<h1>" + html.EscapeString(category.Title()) + "</h1>")
		buf.WriteString("<ul class=\"listing\">")
		for _, d := range entries {
			buf.WriteString("<li><a href=\"" + html.EscapeString(d.Path) + "\">")
			buf.WriteString(html.EscapeString(d.Meta.Title()))
			buf.WriteString("</a><time datetime=\"" + d.Meta.PublishedAt().Format("2006-01-02") + "\">")
			buf.WriteString(html.EscapeString(FormatDate(d.Meta.PublishedAt())))
			buf.WriteString("</time>")
			if summary, ok := d.Meta.Summary(); ok && summary != "" {
				buf.WriteString("<p class=\"summary\">" + html.EscapeString(summary) + "</p>")
			}
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// PageHTML composes the full page for the build: body via Render, head tags
// via HeadTags, chrome via Shell. Only the home page mounts the fireworks
// overlay; whether it actually animates is the client session's call.
func PageHTML(cfg SiteConfig, index []content.Document, page content.Document) templ.Component {
	doc := Render(cfg, index, page)
	tags := HeadTags(cfg, page.Meta, PageURL(cfg, page.Path))
	overlay := page.Meta.Kind() == content.KindHomePage
	switch page.Meta.Kind() {
	case content.KindPost, content.KindTalk:
		return Shell(cfg, doc, tags, page.Path, overlay, ArticleJsonLD(cfg, page))
	}
	return Shell(cfg, doc, tags, page.Path, overlay)
}
