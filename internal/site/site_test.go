package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/heritage-alg/heritage/internal/booking"
	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/config"
)

const fixture = `[
  {"id": "c1", "name": "Caftan Yasmine", "type": "caftan", "description": "Velours brodé", "imageUrl": "/assets/products/yasmine.webp", "price": 150, "rentalPrice": 150, "purchasePrice": 890, "available": true, "createdAt": "2024-01-15T10:00:00Z"},
  {"id": "c2", "name": "Caftan Nour", "type": "caftan", "description": "Mousseline", "imageUrl": "/assets/products/nour.webp", "price": 120, "available": true, "createdAt": "2024-02-01"},
  {"id": "c3", "name": "Caftan Royal", "type": "caftan", "description": "Soie", "imageUrl": "/assets/products/royal.webp", "price": 250, "available": false, "createdAt": "2024-03-05"},
  {"id": "c4", "name": "Caftan Safia", "type": "caftan", "description": "Satin", "imageUrl": "/assets/products/safia.webp", "price": 140, "available": true, "createdAt": "2024-04-13"},
  {"id": "c5", "name": "Caftan Zina", "type": "caftan", "description": "Crêpe", "imageUrl": "/assets/products/zina.webp", "price": 130, "available": true, "createdAt": "2024-04-12"},
  {"id": "k1", "name": "Karakou Algérois", "type": "karakou", "description": "Veste brodée", "imageUrl": "/assets/products/karakou.webp", "price": 180, "available": true, "createdAt": "2024-02-10"},
  {"id": "a1", "name": "Ceinture dorée", "type": "ceinture", "description": "Mdamma", "imageUrl": "/assets/products/ceinture.webp", "price": 45, "available": true, "createdAt": "2024-04-01"}
]`

func newTestSite(t *testing.T, mutate ...func(*config.Config)) *Site {
	t.Helper()
	dir := t.TempDir()
	productsPath := filepath.Join(dir, "products.json")
	if err := os.WriteFile(productsPath, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Data.ProductsJSON = productsPath
	cfg.AssetsDir = filepath.Join(dir, "assets")
	for _, m := range mutate {
		m(cfg)
	}

	cat := catalog.NewService(catalog.NewLoader(catalog.JSONFile{Path: productsPath}))
	s, err := New(cfg, cat, booking.NewService(cfg.Contact.CalendlyURL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func setupRouter(s *Site) chi.Router {
	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w, w.Body.String()
}

func enableAccessories(c *config.Config) { c.Features.AccessoriesEnabled = true }

func TestHomePage(t *testing.T) {
	r := setupRouter(newTestSite(t))
	w, body := get(t, r, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html, got %q", ct)
	}
	for _, want := range []string{
		"Questions fréquemment posées",
		"Première expérience de location",
		`data-live="/ws/carousel/testimonials"`,
		`data-live="/ws/carousel/products"`,
		"translateX(",
		"transform 0.5s ease-in-out",
		`href="/?t=1"`,
		`href="/?p=-1"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestHomeCarouselIndexFromQuery(t *testing.T) {
	r := setupRouter(newTestSite(t))
	_, body := get(t, r, "/?t=4&width=972&viewport=1280")

	// 972px, 3 visible, 24px gap: 308px cards, step 332.
	if !strings.Contains(body, "translateX(-1328px)") {
		t.Error("expected testimonial track at index 4")
	}
	if !strings.Contains(body, "width: 308px") {
		t.Error("expected 308px cards")
	}
	if !strings.Contains(body, "t=5") || !strings.Contains(body, "t=3") {
		t.Error("expected prev/next links around index 4")
	}
}

func TestHomeNarrowViewport(t *testing.T) {
	r := setupRouter(newTestSite(t))
	_, body := get(t, r, "/?width=400&viewport=400")

	// Single card at 75% of 400, centered by 50px.
	if !strings.Contains(body, "translateX(50px)") {
		t.Error("expected centered narrow testimonial track")
	}
	if !strings.Contains(body, "width: 300px") {
		t.Error("expected 300px narrow card")
	}
}

func TestNavLinks(t *testing.T) {
	links := NavLinks(config.Features{}, "/contact")
	for _, l := range links {
		if l.Href == "/accessoires" {
			t.Error("accessories link shown while disabled")
		}
		if l.Active != (l.Href == "/contact") {
			t.Errorf("%s active = %v", l.Href, l.Active)
		}
	}
	if len(links) != 5 {
		t.Errorf("expected 5 links, got %d", len(links))
	}

	links = NavLinks(config.Features{AccessoriesEnabled: true}, "/")
	if len(links) != 6 || links[3].Href != "/accessoires" {
		t.Errorf("expected accessories as fourth link, got %+v", links)
	}
}

func TestListingPages(t *testing.T) {
	r := setupRouter(newTestSite(t))
	tests := []struct {
		path    string
		want    []string
		notWant []string
	}{
		{"/catalogue", []string{"Caftans - Takchitas", "Caftan Yasmine", "Achat"}, []string{"Karakou Algérois"}},
		{"/tenues-algeriennes", []string{"Tenues Algériennes", "Karakou Algérois"}, []string{"Caftan Nour"}},
		{"/robes", []string{"Notre Collection", "Caftan Nour", "Karakou Algérois"}, nil},
		{"/robes?type=karakou", []string{"Karakou Algérois"}, []string{"Caftan Nour"}},
		{"/robes?q=NOUR", []string{"Caftan Nour"}, []string{"Caftan Royal"}},
		{"/robes?type=bogus", []string{"Aucune robe ne correspond"}, []string{"Caftan Nour"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, body := get(t, r, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			for _, s := range tt.want {
				if !strings.Contains(body, s) {
					t.Errorf("missing %q", s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(body, s) {
					t.Errorf("unexpected %q", s)
				}
			}
		})
	}
}

func TestAccessoriesFeatureFlag(t *testing.T) {
	r := setupRouter(newTestSite(t))
	if w, _ := get(t, r, "/accessoires"); w.Code != http.StatusNotFound {
		t.Errorf("disabled accessories: expected 404, got %d", w.Code)
	}
	if w, _ := get(t, r, "/accessoire/a1"); w.Code != http.StatusNotFound {
		t.Errorf("disabled accessory: expected 404, got %d", w.Code)
	}

	r = setupRouter(newTestSite(t, enableAccessories))
	w, body := get(t, r, "/accessoires")
	if w.Code != http.StatusOK {
		t.Fatalf("enabled accessories: expected 200, got %d", w.Code)
	}
	if !strings.Contains(body, "Ceinture dorée") || !strings.Contains(body, `href="/accessoire/a1"`) {
		t.Error("expected accessory card linking to its page")
	}
	if !strings.Contains(body, `href="/accessoires"`) {
		t.Error("expected accessories nav link")
	}
	if w, _ := get(t, r, "/accessoire/a1"); w.Code != http.StatusOK {
		t.Errorf("accessory detail: expected 200, got %d", w.Code)
	}
	if w, _ := get(t, r, "/accessoire/c1"); w.Code != http.StatusNotFound {
		t.Errorf("dress as accessory: expected 404, got %d", w.Code)
	}
}

func TestDressDetail(t *testing.T) {
	r := setupRouter(newTestSite(t))
	w, body := get(t, r, "/robe/c1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, want := range []string{
		"Caftan Yasmine",
		"Disponible immédiatement",
		"Robes similaires",
		`data-live="/ws/carousel/similar?robe=c1"`,
		`href="/contact?robe=c1"`,
		"Caftan Zina",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("detail page missing %q", want)
		}
	}

	_, body = get(t, r, "/robe/k1")
	if strings.Contains(body, "Robes similaires") {
		t.Error("karakou has no similar products")
	}

	w, body = get(t, r, "/robe/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(body, "Robe non trouvée") {
		t.Error("expected not-found heading")
	}
}

func TestContactPreselection(t *testing.T) {
	r := setupRouter(newTestSite(t))
	_, body := get(t, r, "/contact?robe=c2")
	if !strings.Contains(body, "Robe présélectionnée:") || !strings.Contains(body, "Caftan Nour - Caftan") {
		t.Error("expected preselected dress")
	}
	if !strings.Contains(body, "https://calendly.com/heritage-rdv") {
		t.Error("expected scheduling iframe")
	}

	_, body = get(t, r, "/contact?robe=missing")
	if strings.Contains(body, "Robe présélectionnée") {
		t.Error("unknown dress must not be preselected")
	}
}

func TestContentPages(t *testing.T) {
	r := setupRouter(newTestSite(t))
	for _, path := range []string{"/notre-histoire", "/mentions-legales", "/conditions-vente"} {
		w, body := get(t, r, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if !strings.Contains(body, `<article class="page prose">`) {
			t.Errorf("%s: missing article", path)
		}
	}
}

func TestNotFound(t *testing.T) {
	r := setupRouter(newTestSite(t))
	w, body := get(t, r, "/nowhere")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(body, "Page introuvable") {
		t.Error("expected 404 page")
	}
}

func TestStaticFiles(t *testing.T) {
	r := setupRouter(newTestSite(t))
	w, body := get(t, r, "/static/site.css")
	if w.Code != http.StatusOK || !strings.Contains(body, ".carousel-track") {
		t.Errorf("css: %d", w.Code)
	}
	w, body = get(t, r, "/static/site.js")
	if w.Code != http.StatusOK || !strings.Contains(body, "WebSocket") {
		t.Errorf("js: %d", w.Code)
	}
}

func TestAssets(t *testing.T) {
	s := newTestSite(t)
	if err := os.MkdirAll(filepath.Join(s.cfg.AssetsDir, "products"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.cfg.AssetsDir, "products", "a.webp"), []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, body := get(t, setupRouter(s), "/assets/products/a.webp")
	if w.Code != http.StatusOK || body != "img" {
		t.Errorf("expected asset, got %d %q", w.Code, body)
	}
}

func TestSrcSetOnlyWithVariants(t *testing.T) {
	s := newTestSite(t)
	if got := s.srcset("/assets/products/nour.webp"); got != "" {
		t.Errorf("srcset without variants = %q", got)
	}

	dir := filepath.Join(s.cfg.AssetsDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nour-thumb.webp"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got := s.srcset("/assets/products/nour.webp")
	if !strings.HasPrefix(got, "/assets/products/nour-xlarge.webp 1800w") {
		t.Errorf("srcset = %q", got)
	}
	if s.srcset("https://cdn.example.com/x.webp") != "" {
		t.Error("remote images have no srcset")
	}
}

func postForm(t *testing.T, h http.Handler, form url.Values) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/reserver", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w, w.Body.String()
}

func TestBookingForm(t *testing.T) {
	r := setupRouter(newTestSite(t))
	w, body := get(t, r, "/reserver?robe=c1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(body, `<option value="caftan" selected>`) {
		t.Error("expected preselected dress type")
	}
	if !strings.Contains(body, `name="dressId" value="c1"`) {
		t.Error("expected preselected dress id")
	}
	if !strings.Contains(body, `name="step" value="1"`) {
		t.Error("expected step 1")
	}
}

func TestBookingSteps(t *testing.T) {
	r := setupRouter(newTestSite(t))
	valid := url.Values{
		"clientName":      {"Amina"},
		"clientEmail":     {"amina@example.com"},
		"clientPhone":     {"0600000000"},
		"appointmentDate": {"2099-06-01T14:30"},
		"dressType":       {"caftan"},
	}
	with := func(kv ...string) url.Values {
		v := url.Values{}
		for k, vs := range valid {
			v[k] = vs
		}
		for i := 0; i+1 < len(kv); i += 2 {
			v.Set(kv[i], kv[i+1])
		}
		return v
	}

	t.Run("next with missing name", func(t *testing.T) {
		w, body := postForm(t, r, with("step", "1", "action", "next", "clientName", ""))
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
		if !strings.Contains(body, "Le nom est requis") || !strings.Contains(body, `name="step" value="1"`) {
			t.Error("expected to stay on step 1 with an error")
		}
	})

	t.Run("next advances", func(t *testing.T) {
		w, body := postForm(t, r, with("step", "1", "action", "next"))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(body, `name="step" value="2"`) {
			t.Error("expected step 2")
		}
		if !strings.Contains(body, `value="Amina"`) {
			t.Error("expected earlier answers to be kept")
		}
	})

	t.Run("back", func(t *testing.T) {
		_, body := postForm(t, r, with("step", "3", "action", "back"))
		if !strings.Contains(body, `name="step" value="2"`) {
			t.Error("expected step 2")
		}
	})

	t.Run("submit with past date", func(t *testing.T) {
		w, body := postForm(t, r, with("step", "3", "action", "submit", "appointmentDate", "2001-01-01T10:00"))
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
		if !strings.Contains(body, "La date doit être dans le futur") || !strings.Contains(body, `name="step" value="2"`) {
			t.Error("expected to go back to the date step")
		}
	})

	t.Run("submit valid", func(t *testing.T) {
		w, body := postForm(t, r, with("step", "3", "action", "submit"))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(body, "Demande prête") || !strings.Contains(body, "pas encore ouvertes") {
			t.Error("expected static mode notice")
		}
	})
}

func TestParseStep(t *testing.T) {
	tests := map[string]int{"": 1, "1": 1, "2": 2, "3": 3, "4": 1, "x": 1, "-1": 1}
	for in, want := range tests {
		if got := parseStep(in); got != want {
			t.Errorf("parseStep(%q) = %d, want %d", in, got, want)
		}
	}
}

func decodeJSON(t *testing.T, r io.Reader, v any) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestProductsJSON(t *testing.T) {
	r := setupRouter(newTestSite(t))
	w, _ := get(t, r, "/data/products.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var products []catalog.Product
	decodeJSON(t, w.Body, &products)
	if len(products) != 7 {
		t.Errorf("expected 7 products, got %d", len(products))
	}
}

func TestAPIProducts(t *testing.T) {
	r := setupRouter(newTestSite(t))

	w, _ := get(t, r, "/api/products?type=caftan&q=a")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var products []catalog.Product
	decodeJSON(t, w.Body, &products)
	if len(products) != 5 {
		t.Errorf("expected 5 caftans, got %d", len(products))
	}

	if w, _ := get(t, r, "/api/products?type=bogus"); w.Code != http.StatusBadRequest {
		t.Errorf("bogus type: expected 400, got %d", w.Code)
	}

	w, body := get(t, r, "/api/products/c1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(body, `"price":150`) {
		t.Errorf("expected numeric price, got %s", body)
	}

	w, body = get(t, r, "/api/products/nope")
	if w.Code != http.StatusNotFound || !strings.Contains(body, "not found") {
		t.Errorf("expected 404 not found, got %d %s", w.Code, body)
	}
}

func TestAPIWritesAreStatic(t *testing.T) {
	r := setupRouter(newTestSite(t))
	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/products", `{"name":"x","type":"caftan","price":10}`, http.StatusNotImplemented},
		{http.MethodPut, "/api/products/c1", `{"name":"x"}`, http.StatusNotImplemented},
		{http.MethodDelete, "/api/products/c1", "", http.StatusNotImplemented},
		{http.MethodPost, "/api/products", `{`, http.StatusBadRequest},
		{http.MethodPost, "/api/appointments", `{"clientName":""}`, http.StatusUnprocessableEntity},
		{http.MethodPost, "/api/appointments", `{"clientName":"A","clientEmail":"a@b.fr","clientPhone":"1","appointmentDate":"2099-01-01T10:00","dressType":"karakou"}`, http.StatusNotImplemented},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s %s: expected %d, got %d (%s)", tt.method, tt.path, tt.want, w.Code, w.Body.String())
		}
	}
}

type frameJSON struct {
	Index        int  `json:"index"`
	DisplayIndex int  `json:"display_index"`
	Looping      bool `json:"looping"`
	Geometry     struct {
		ItemWidth    float64 `json:"item_width"`
		VisibleCount int     `json:"visible_count"`
	} `json:"geometry"`
	Offset          float64 `json:"offset"`
	CenteredLogical int     `json:"centered_logical"`
	Slots           []struct {
		Logical  int `json:"logical"`
		Physical int `json:"physical"`
	} `json:"slots"`
}

func TestCarouselFrameEndpoint(t *testing.T) {
	r := setupRouter(newTestSite(t))

	w, _ := get(t, r, "/api/carousel/testimonials?index=-1&width=972&viewport=1280")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var f frameJSON
	decodeJSON(t, w.Body, &f)
	if !f.Looping || f.Index != -1 {
		t.Errorf("frame = %+v", f)
	}
	if f.Geometry.ItemWidth != 308 {
		t.Errorf("item width = %v, want 308", f.Geometry.ItemWidth)
	}
	if f.CenteredLogical != 0 {
		t.Errorf("centered = %d, want 0", f.CenteredLogical)
	}
	if f.Offset != 332 {
		t.Errorf("offset = %v, want 332", f.Offset)
	}

	w, _ = get(t, r, "/api/carousel/testimonials?index=5")
	f = frameJSON{}
	decodeJSON(t, w.Body, &f)
	if f.Looping || f.Index != 0 || len(f.Slots) != 6 {
		t.Errorf("unmeasured frame should be static at 0, got %+v", f)
	}

	w, _ = get(t, r, "/api/carousel/similar?robe=c1&width=972")
	f = frameJSON{}
	decodeJSON(t, w.Body, &f)
	if !f.Looping {
		t.Error("four similar caftans should loop")
	}

	if w, _ := get(t, r, "/api/carousel/similar?robe=nope&width=972"); w.Code != http.StatusNotFound {
		t.Errorf("unknown dress: expected 404, got %d", w.Code)
	}
	if w, _ := get(t, r, "/api/carousel/unknown"); w.Code != http.StatusNotFound {
		t.Errorf("unknown carousel: expected 404, got %d", w.Code)
	}
}

func TestReadMeasurement(t *testing.T) {
	tests := []struct {
		query string
		want  measurement
	}{
		{"", nominal},
		{"t=3", measurement{Index: 3, Width: NominalContainerWidth, Viewport: NominalViewportWidth}},
		{"width=500", measurement{Width: 500, Viewport: 500}},
		{"width=500&viewport=1400", measurement{Width: 500, Viewport: 1400}},
		{"width=-5&t=x", nominal},
		{"width=Inf", nominal},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.query)
		if got := readMeasurement(q, "t", nominal); got != tt.want {
			t.Errorf("readMeasurement(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}

func TestStepURL(t *testing.T) {
	q := url.Values{"t": {"2"}, "width": {"972"}}
	got := stepURL("/", q, "t", 3)
	if got != "/?t=3&width=972" {
		t.Errorf("stepURL = %q", got)
	}
	if q.Get("t") != "2" {
		t.Error("stepURL modified its input")
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating      float64
		full, empty int
		half        bool
	}{
		{5, 5, 0, false},
		{4.5, 4, 0, true},
		{3, 3, 2, false},
	}
	for _, tt := range tests {
		s := starsFor(tt.rating)
		if len(s.Full) != tt.full || len(s.Empty) != tt.empty || s.Half != tt.half {
			t.Errorf("starsFor(%v) = %d/%v/%d", tt.rating, len(s.Full), s.Half, len(s.Empty))
		}
	}
}
