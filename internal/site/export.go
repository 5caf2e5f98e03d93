package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heritage-alg/heritage/internal/imaging"
)

// Generator writes the site as static files for hosting without the server.
type Generator struct {
	site *Site
}

// NewGenerator creates a Generator for s. Exported pages have no live
// sessions and no query-string carousel navigation.
func NewGenerator(s *Site) *Generator {
	exp := *s
	exp.static = true
	return &Generator{site: &exp}
}

// ExportResult summarizes an export.
type ExportResult struct {
	Pages  int
	Assets int
}

// Paths lists every page the export renders, in order.
func (g *Generator) Paths(ctx context.Context) []string {
	paths := []string{"/", "/catalogue", "/tenues-algeriennes"}
	if g.site.cfg.Features.AccessoriesEnabled {
		paths = append(paths, "/accessoires")
		for _, p := range g.site.catalog.Accessories(ctx) {
			paths = append(paths, "/accessoire/"+p.ID)
		}
	}
	paths = append(paths, "/robes")
	for _, p := range g.site.catalog.All(ctx) {
		paths = append(paths, "/robe/"+p.ID)
	}
	paths = append(paths,
		"/contact", "/reserver",
		"/notre-histoire", "/mentions-legales", "/conditions-vente",
	)
	return paths
}

// Export renders every page to dir/<path>/index.html, the 404 page to
// dir/404.html, the catalog to dir/data/products.json and the static
// assets, then copies the product images.
func (g *Generator) Export(ctx context.Context, dir string) (ExportResult, error) {
	var res ExportResult
	r := chi.NewRouter()
	g.site.RegisterRoutes(r)

	write := func(path, target string, wantStatus int) error {
		body, err := g.fetch(ctx, r, path, wantStatus)
		if err != nil {
			return err
		}
		out := filepath.Join(dir, filepath.FromSlash(target))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		return os.WriteFile(out, body, 0o644)
	}

	for _, p := range g.Paths(ctx) {
		target := strings.TrimPrefix(p, "/") + "/index.html"
		if p == "/" {
			target = "index.html"
		}
		if err := write(p, target, http.StatusOK); err != nil {
			return res, err
		}
		res.Pages++
	}

	extras := []struct {
		path, target string
		status       int
	}{
		{"/__missing__", "404.html", http.StatusNotFound},
		{"/data/products.json", "data/products.json", http.StatusOK},
		{"/static/site.css", "static/site.css", http.StatusOK},
		{"/static/site.js", "static/site.js", http.StatusOK},
	}
	for _, e := range extras {
		if err := write(e.path, e.target, e.status); err != nil {
			return res, err
		}
	}

	n, err := copyTree(g.site.cfg.AssetsDir, filepath.Join(dir, "assets"))
	if err != nil {
		return res, fmt.Errorf("copying assets: %w", err)
	}
	res.Assets = n
	return res, nil
}

// fetch renders path through h.
func (g *Generator) fetch(ctx context.Context, h http.Handler, path string, wantStatus int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	rec := newRecorder()
	h.ServeHTTP(rec, req)
	if rec.status != wantStatus {
		return nil, fmt.Errorf("rendering %s: status %d", path, rec.status)
	}
	return rec.body.Bytes(), nil
}

// recorder is a minimal in-memory ResponseWriter.
type recorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{header: http.Header{}, status: http.StatusOK}
}

func (r *recorder) Header() http.Header         { return r.header }
func (r *recorder) Write(b []byte) (int, error) { return r.body.Write(b) }
func (r *recorder) WriteHeader(status int)      { r.status = status }

// copyTree copies the regular files under src into dst. A missing src copies
// nothing.
func copyTree(src, dst string) (int, error) {
	if src == "" {
		return 0, nil
	}
	if _, err := os.Stat(src); os.IsNotExist(err) {
		log.Printf("site: assets dir %s does not exist, skipping", src)
		return 0, nil
	}

	n := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
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
		if !d.Type().IsRegular() || imaging.IsBackup(rel) {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
