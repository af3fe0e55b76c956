package byteszone

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lukewestby/bytes.zone/content"
	"github.com/lukewestby/bytes.zone/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// WriteFeed emits an RSS 2.0 feed of the site's posts and talks, newest
// first. Pages, the homepage, and indexes never become feed items.
func WriteFeed(w io.Writer, cfg SiteConfig, docs []content.Document) error {
	entries := append(
		content.OfKind(docs, content.KindPost),
		content.OfKind(docs, content.KindTalk)...,
	)
	content.SortNewestFirst(entries)

	vcfg := cfg.viewConfig()
	items := make([]rssItem, 0, len(entries))
	for _, d := range entries {
		description := ""
		if summary, ok := d.Meta.Summary(); ok {
			description = summary
		}
		itemURL := views.PageURL(vcfg, d.Path)
		items = append(items, rssItem{
			Title:       d.Meta.Title(),
			Link:        itemURL,
			Description: description,
			PubDate:     d.Meta.PublishedAt().Format(time.RFC1123Z),
			GUID:        itemURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        cfg.URL,
			Description: cfg.Tagline,
			Items:       items,
		},
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}

func (s *Site) writeFeed() error {
	path := filepath.Join(s.Config.OutputDir, "feed.xml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("byteszone: create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteFeed(f, s.Config, s.Docs); err != nil {
		return fmt.Errorf("byteszone: write feed: %w", err)
	}
	return f.Close()
}
