package site

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"

	"github.com/heritage-alg/heritage/internal/booking"
	"github.com/heritage-alg/heritage/internal/carousel"
	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/config"
	"github.com/heritage-alg/heritage/internal/content"
)

// navLink is one entry of the side menu.
type navLink struct {
	Label  string
	Href   string
	Active bool
}

// NavLinks derives the side menu from the feature flags.
func NavLinks(f config.Features, current string) []navLink {
	links := []navLink{
		{Label: "Accueil", Href: "/"},
		{Label: "Caftans - Takchitas", Href: "/catalogue"},
		{Label: "Tenues algériennes", Href: "/tenues-algeriennes"},
	}
	if f.AccessoriesEnabled {
		links = append(links, navLink{Label: "Accessoires", Href: "/accessoires"})
	}
	links = append(links,
		navLink{Label: "Contact", Href: "/contact"},
		navLink{Label: "Notre histoire", Href: "/notre-histoire"},
	)
	for i := range links {
		links[i].Active = links[i].Href == current
	}
	return links
}

// pageData is passed to every page template.
type pageData struct {
	Title   string
	Nav     []navLink
	Contact config.ContactConfig
	Year    int
	Body    any
}

// render executes the named page template inside the layout.
func (s *Site) render(w http.ResponseWriter, r *http.Request, status int, name, title string, body any) {
	data := pageData{
		Title:   title,
		Nav:     NavLinks(s.cfg.Features, r.URL.Path),
		Contact: s.cfg.Contact,
		Year:    time.Now().Year(),
		Body:    body,
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("site: rendering %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

type homeBody struct {
	Testimonials carouselView
	Products     carouselView
	FAQs         []content.FAQ
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	testimonials := carousel.New(content.Testimonials, s.cfg.Carousel.TestimonialOptions())
	products := carousel.New(s.catalog.All(r.Context()), s.cfg.Carousel.Options())

	s.render(w, r, http.StatusOK, "home", "Héritage", homeBody{
		Testimonials: s.view(buildView(CarouselTestimonials, testimonials, q, "t", r.URL.Path)),
		Products:     s.view(buildView(CarouselProducts, products, q, "p", r.URL.Path)),
		FAQs:         content.FAQs,
	})
}

// view adjusts a carousel view for the serving mode.
func (s *Site) view(v carouselView) carouselView {
	if s.static {
		v.PrevURL, v.NextURL, v.LiveURL = "", "", ""
	}
	return v
}

type listBody struct {
	Heading  string
	Intro    string
	Products []catalog.Product
	// Purchase shows the purchase price next to the rental price.
	Purchase bool
	Detail   string
	Empty    string
}

func (s *Site) handleCatalogue(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "list", "Caftans - Takchitas", listBody{
		Heading:  "Caftans - Takchitas",
		Intro:    "Découvrez notre collection exclusive de caftans et takchitas, alliant tradition et modernité.",
		Products: s.catalog.CaftansTakchitas(r.Context()),
		Purchase: true,
		Detail:   "/robe/",
		Empty:    "Aucune tenue disponible pour le moment.",
	})
}

func (s *Site) handleAlgerian(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "list", "Tenues Algériennes", listBody{
		Heading:  "Tenues Algériennes",
		Intro:    "Explorez notre collection de tenues traditionnelles algériennes, alliant authenticité et élégance.",
		Products: s.catalog.AlgerianOutfits(r.Context()),
		Purchase: true,
		Detail:   "/robe/",
		Empty:    "Aucune tenue disponible pour le moment.",
	})
}

func (s *Site) handleAccessories(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.Features.AccessoriesEnabled {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "list", "Accessoires", listBody{
		Heading:  "Accessoires",
		Intro:    "Découvrez notre collection d'accessoires traditionnels pour compléter votre tenue avec élégance.",
		Products: s.catalog.Accessories(r.Context()),
		Detail:   "/accessoire/",
		Empty:    "Aucun accessoire disponible pour le moment.",
	})
}

type filterLink struct {
	Label  string
	Href   string
	Active bool
}

type dressesBody struct {
	listBody
	Query   string
	Filters []filterLink
}

func (s *Site) handleDresses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	selected := catalog.DressType(q.Get("type"))
	term := strings.TrimSpace(q.Get("q"))

	var products []catalog.Product
	if selected == "" || selected.Valid() {
		products = catalog.Search(s.catalog.Dresses(r.Context(), selected), term)
	}

	filters := []filterLink{{Label: "Toutes", Href: "/robes", Active: selected == ""}}
	for _, t := range catalog.DressTypes {
		filters = append(filters, filterLink{
			Label:  catalog.DressTypeName(t),
			Href:   "/robes?type=" + string(t),
			Active: t == selected,
		})
	}

	s.render(w, r, http.StatusOK, "dresses", "Notre Collection", dressesBody{
		listBody: listBody{
			Heading:  "Notre Collection",
			Intro:    "Explorez notre sélection de robes orientales traditionnelles et modernes.",
			Products: products,
			Detail:   "/robe/",
			Empty:    "Aucune robe ne correspond à votre recherche.",
		},
		Query:   term,
		Filters: filters,
	})
}

type detailBody struct {
	Product catalog.Product
	Similar carouselView
	// HasSimilar is false when no other product shares the type.
	HasSimilar bool
	Back       string
}

func (s *Site) handleDress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.catalog.DressByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.renderMissing(w, r, err, "Robe non trouvée")
		return
	}

	items := similarItems(s.catalog.All(ctx), p)
	q := r.URL.Query()
	similar := carousel.New(items, s.cfg.Carousel.Options())
	v := s.view(buildView(CarouselSimilar, similar, q, "s", r.URL.Path))
	if v.LiveURL != "" {
		v.LiveURL += "?robe=" + p.ID
	}

	s.render(w, r, http.StatusOK, "detail", p.Name, detailBody{
		Product:    p,
		Similar:    v,
		HasSimilar: len(items) > 0,
		Back:       "/robes",
	})
}

func (s *Site) handleAccessory(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.Features.AccessoriesEnabled {
		s.handleNotFound(w, r)
		return
	}
	p, err := s.catalog.AccessoryByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderMissing(w, r, err, "Accessoire non trouvé")
		return
	}
	s.render(w, r, http.StatusOK, "detail", p.Name, detailBody{Product: p, Back: "/accessoires"})
}

// renderMissing renders the not-found page for ErrNotFound and a 500
// otherwise.
func (s *Site) renderMissing(w http.ResponseWriter, r *http.Request, err error, heading string) {
	if errors.Is(err, catalog.ErrNotFound) {
		s.render(w, r, http.StatusNotFound, "notfound", heading, notFoundBody{Heading: heading})
		return
	}
	log.Printf("site: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

type contactBody struct {
	Selected    *catalog.Product
	CalendlyURL string
}

func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	body := contactBody{CalendlyURL: s.cfg.Contact.CalendlyURL}
	if id := r.URL.Query().Get("robe"); id != "" {
		if p, err := s.catalog.DressByID(r.Context(), id); err == nil {
			body.Selected = &p
		}
	}
	s.render(w, r, http.StatusOK, "contact", "Contact", body)
}

type bookingBody struct {
	Step      int
	Steps     []int
	Request   booking.CreateAppointmentRequest
	Errors    booking.Errors
	MinDate   string
	Types     []catalog.DressType
	Selected  *catalog.Product
	Scheduled bool
	// Notice is shown once a valid request could not be stored.
	Notice      string
	CalendlyURL string
}

func (s *Site) newBookingBody() bookingBody {
	return bookingBody{
		Step:        booking.StepContact,
		Steps:       []int{booking.StepContact, booking.StepDate, booking.StepDress, booking.StepDone},
		MinDate:     booking.MinDateTimeInput(s.booking.Now()),
		Types:       catalog.DressTypes,
		CalendlyURL: s.booking.SchedulingURL,
	}
}

func (s *Site) handleBookingForm(w http.ResponseWriter, r *http.Request) {
	body := s.newBookingBody()
	if id := r.URL.Query().Get("robe"); id != "" {
		if p, err := s.catalog.DressByID(r.Context(), id); err == nil {
			booking.ApplyPreselection(&body.Request, p)
			body.Selected = &p
		}
	}
	s.render(w, r, http.StatusOK, "booking", "Réserver un essayage", body)
}

// handleBookingSubmit walks the form one step per POST. "back" and "next"
// move between steps, "submit" validates everything.
func (s *Site) handleBookingSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	body := s.newBookingBody()
	body.Request = booking.CreateAppointmentRequest{
		ClientName:      strings.TrimSpace(r.PostForm.Get("clientName")),
		ClientEmail:     strings.TrimSpace(r.PostForm.Get("clientEmail")),
		ClientPhone:     strings.TrimSpace(r.PostForm.Get("clientPhone")),
		AppointmentDate: r.PostForm.Get("appointmentDate"),
		DressType:       catalog.DressType(r.PostForm.Get("dressType")),
		Notes:           strings.TrimSpace(r.PostForm.Get("notes")),
		DressID:         r.PostForm.Get("dressId"),
	}
	if body.Request.DressID != "" {
		if p, err := s.catalog.DressByID(r.Context(), body.Request.DressID); err == nil {
			body.Selected = &p
		}
	}

	step := parseStep(r.PostForm.Get("step"))
	now := s.booking.Now()
	status := http.StatusOK

	switch r.PostForm.Get("action") {
	case "back":
		body.Step = max(booking.StepContact, step-1)
	case "next":
		if errs := booking.ValidateStep(body.Request, step, now); len(errs) > 0 {
			body.Step, body.Errors = step, errs
			status = http.StatusUnprocessableEntity
		} else {
			body.Step = min(booking.StepDress, step+1)
		}
	default:
		_, err := s.booking.Create(r.Context(), body.Request)
		var errs booking.Errors
		switch {
		case errors.As(err, &errs):
			body.Step = booking.FirstInvalidStep(body.Request, now)
			body.Errors = errs
			status = http.StatusUnprocessableEntity
		case errors.Is(err, catalog.ErrStaticMode):
			body.Step = booking.StepDone
			body.Notice = "Les réservations en ligne ne sont pas encore ouvertes. Finalisez votre rendez-vous dans notre calendrier."
		case err != nil:
			log.Printf("site: creating appointment: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		default:
			body.Step = booking.StepDone
			body.Scheduled = true
		}
	}

	s.render(w, r, status, "booking", "Réserver un essayage", body)
}

func parseStep(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < booking.StepContact || n > booking.StepDress {
		return booking.StepContact
	}
	return n
}

type contentBody struct {
	Page content.Page
}

func (s *Site) handleContentPage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := content.PageBySlug(slug)
		if !ok {
			s.handleNotFound(w, r)
			return
		}
		s.render(w, r, http.StatusOK, "content", p.Title, contentBody{Page: p})
	}
}

type notFoundBody struct {
	Heading string
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", "Page introuvable", notFoundBody{Heading: "Page introuvable"})
}
