package booking

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/heritage-alg/heritage/internal/catalog"
)

// Service handles appointment requests.
type Service struct {
	// SchedulingURL is the external widget that takes confirmed bookings.
	SchedulingURL string
	now           func() time.Time
}

// NewService creates a Service pointing at the given scheduling widget.
func NewService(schedulingURL string) *Service {
	return &Service{SchedulingURL: schedulingURL, now: time.Now}
}

// Now returns the service clock.
func (s *Service) Now() time.Time { return s.now() }

// Create validates req. A valid request still fails with
// catalog.ErrStaticMode since there is nothing to store it in.
func (s *Service) Create(ctx context.Context, req CreateAppointmentRequest) (Appointment, error) {
	if errs := Validate(req, s.now()); errs != nil {
		return Appointment{}, errs
	}
	return Appointment{}, errors.Wrap(catalog.ErrStaticMode, "create appointment")
}

// Summarize counts appointments by status. Today is counted in now's
// location.
func Summarize(appointments []Appointment, now time.Time) Statistics {
	var st Statistics
	y, m, d := now.Date()
	for _, a := range appointments {
		st.Total++
		switch a.Status {
		case StatusPending:
			st.Pending++
		case StatusConfirmed:
			st.Confirmed++
		case StatusCancelled:
			st.Cancelled++
		case StatusCompleted:
			st.Completed++
		}
		at, err := ParseAppointmentDate(a.AppointmentDate, now.Location())
		if err != nil {
			continue
		}
		ay, am, ad := at.In(now.Location()).Date()
		if ay == y && am == m && ad == d {
			st.Today++
		}
	}
	return st
}
