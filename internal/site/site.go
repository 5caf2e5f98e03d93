// Package site renders the boutique's pages and serves the catalog JSON API,
// the carousel frame endpoint and the live carousel sessions.
package site

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/heritage-alg/heritage/internal/booking"
	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/config"
)

// RequestTimeout bounds every non-streaming request.
const RequestTimeout = 30 * time.Second

// Site holds everything the handlers need.
type Site struct {
	cfg     *config.Config
	catalog *catalog.Service
	booking *booking.Service
	tmpl    *template.Template
	// static renders pages for the export: no live sessions and no
	// query-string navigation.
	static bool
}

// New parses the templates and wires the services.
func New(cfg *config.Config, cat *catalog.Service, book *booking.Service) (*Site, error) {
	s := &Site{cfg: cfg, catalog: cat, booking: book}
	tmpl, err := template.New("site").Funcs(s.funcs()).Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	s.tmpl = tmpl
	return s, nil
}

// Config returns the site configuration.
func (s *Site) Config() *config.Config { return s.cfg }

// RegisterRoutes mounts all site routes onto the given router. Live sessions
// sit outside the timeout and compression group since they hijack the
// connection.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/ws/carousel/{name}", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(RequestTimeout))
		r.Use(middleware.Compress(5))

		r.Get("/", s.handleHome)
		r.Get("/catalogue", s.handleCatalogue)
		r.Get("/tenues-algeriennes", s.handleAlgerian)
		r.Get("/accessoires", s.handleAccessories)
		r.Get("/accessoire/{id}", s.handleAccessory)
		r.Get("/robes", s.handleDresses)
		r.Get("/robe/{id}", s.handleDress)
		r.Get("/contact", s.handleContact)
		r.Get("/reserver", s.handleBookingForm)
		r.Post("/reserver", s.handleBookingSubmit)
		for _, slug := range []string{"notre-histoire", "mentions-legales", "conditions-vente"} {
			r.Get("/"+slug, s.handleContentPage(slug))
		}

		r.Get("/data/products.json", s.handleProductsJSON)
		r.Route("/api", func(r chi.Router) {
			r.Get("/products", s.handleListProducts)
			r.Get("/products/{id}", s.handleGetProduct)
			r.Post("/products", s.handleWriteProduct)
			r.Put("/products/{id}", s.handleWriteProduct)
			r.Delete("/products/{id}", s.handleWriteProduct)
			r.Post("/appointments", s.handleCreateAppointment)
			r.Get("/carousel/{name}", s.handleCarouselFrame)
		})

		assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.AssetsDir)))
		r.Handle("/assets/*", assets)
		r.Get("/static/site.css", s.handleStatic("text/css; charset=utf-8", cssContent))
		r.Get("/static/site.js", s.handleStatic("text/javascript; charset=utf-8", jsContent))
	})

	r.NotFound(s.handleNotFound)
}

// Handler returns a standalone router serving the site.
func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return r
}

func (s *Site) handleStatic(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}
