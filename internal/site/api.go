package site

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"

	"github.com/heritage-alg/heritage/internal/booking"
	"github.com/heritage-alg/heritage/internal/catalog"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps domain errors onto status codes: ErrNotFound is a 404,
// ErrStaticMode a 501, validation errors a 422.
func writeError(w http.ResponseWriter, err error) {
	var fields booking.Errors
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrStaticMode):
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: err.Error()})
	case errors.As(err, &fields):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid appointment", Fields: fields})
	default:
		log.Printf("site: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// handleProductsJSON serves the raw catalog, as the static site does.
func (s *Site) handleProductsJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.All(r.Context()))
}

// handleListProducts accepts ?type= and ?q= like the /robes page.
func (s *Site) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	t := catalog.DressType(q.Get("type"))
	if t != "" && !t.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown dress type " + string(t)})
		return
	}
	writeJSON(w, http.StatusOK, catalog.Search(s.catalog.Dresses(r.Context(), t), q.Get("q")))
}

func (s *Site) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.DressByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleWriteProduct covers create, update and delete. All of them fail in
// static mode once the payload is understood.
func (s *Site) handleWriteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var err error
	if r.Method == http.MethodDelete {
		err = s.catalog.Delete(ctx, id)
	} else {
		var req catalog.CreateDressRequest
		if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if r.Method == http.MethodPut {
			_, err = s.catalog.Update(ctx, id, req)
		} else {
			_, err = s.catalog.Create(ctx, req)
		}
	}
	writeError(w, err)
}

func (s *Site) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req booking.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	appt, err := s.booking.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

// handleCarouselFrame renders one frame of the named carousel from
// ?index=&width=&viewport=. Without a width the carousel is unmeasured and
// the frame is the static layout.
func (s *Site) handleCarouselFrame(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := s.newDriver(r.Context(), chi.URLParam(r, "name"), q)
	if err != nil {
		writeError(w, err)
		return
	}
	readMeasurement(q, "index", measurement{}).apply(d)
	writeJSON(w, http.StatusOK, d.frame())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("site: encoding response: %v", err)
	}
}
