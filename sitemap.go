package byteszone

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lukewestby/bytes.zone/content"
	"github.com/lukewestby/bytes.zone/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap emits a sitemap covering every document. Pages without a
// publish time omit lastmod rather than claiming the epoch.
func WriteSitemap(w io.Writer, cfg SiteConfig, docs []content.Document) error {
	vcfg := cfg.viewConfig()
	urls := make([]sitemapURL, 0, len(docs))
	for _, d := range docs {
		u := sitemapURL{Loc: views.PageURL(vcfg, d.Path)}
		if t := d.Meta.PublishedAt(); !t.Equal(content.Epoch) {
			u.LastMod = t.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}

func (s *Site) writeSitemap() error {
	path := filepath.Join(s.Config.OutputDir, "sitemap.xml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("byteszone: create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteSitemap(f, s.Config, s.Docs); err != nil {
		return fmt.Errorf("byteszone: write sitemap: %w", err)
	}
	return f.Close()
}
