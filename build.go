package byteszone

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"github.com/lukewestby/bytes.zone/views"
)

// Build renders the whole site into Config.OutputDir: one index.html per
// route, copied static assets, feed.xml, and sitemap.xml.
func (s *Site) Build() error {
	if err := s.Load(); err != nil {
		return err
	}

	out := s.Config.OutputDir
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("byteszone: clean %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("byteszone: create %s: %w", out, err)
	}

	cfg := s.Config.viewConfig()
	for _, doc := range s.Docs {
		if err := s.writePage(doc.Path, views.PageHTML(cfg, s.Docs, doc)); err != nil {
			return err
		}
		log.Printf("rendered %s", doc.Path)
	}

	if err := s.copyStatic(); err != nil {
		return err
	}
	if err := s.writeFeed(); err != nil {
		return err
	}
	if err := s.writeSitemap(); err != nil {
		return err
	}
	if err := s.writeRobots(); err != nil {
		return err
	}
	log.Printf("built %d pages into %s", len(s.Docs), out)
	return nil
}

func (s *Site) writePage(route string, page templ.Component) error {
	dir := filepath.Join(s.Config.OutputDir, filepath.FromSlash(route))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("byteszone: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("byteszone: create %s: %w", path, err)
	}
	defer f.Close()
	if err := page.Render(context.Background(), f); err != nil {
		return fmt.Errorf("byteszone: render %s: %w", route, err)
	}
	return f.Close()
}

// writeRobots emits a robots.txt pointing crawlers at the sitemap.
func (s *Site) writeRobots() error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n",
		strings.TrimSuffix(s.Config.URL, "/"))
	path := filepath.Join(s.Config.OutputDir, "robots.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("byteszone: write %s: %w", path, err)
	}
	return nil
}

// copyStatic mirrors the static dir into the output under /public. A
// missing static dir is fine; not every site ships assets.
func (s *Site) copyStatic() error {
	src := s.Config.StaticDir
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	dst := filepath.Join(s.Config.OutputDir, "public")
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("byteszone: open %s: %w", src, err)
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("byteszone: create %s: %w", filepath.Dir(dst), err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("byteszone: create %s: %w", dst, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("byteszone: copy %s: %w", src, err)
	}
	return out.Close()
}
