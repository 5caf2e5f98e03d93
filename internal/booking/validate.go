package booking

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/heritage-alg/heritage/internal/catalog"
)

// Steps of the booking form.
const (
	StepContact = 1
	StepDate    = 2
	StepDress   = 3
	StepDone    = 4
)

// MinLeadTime is how far ahead an appointment must be booked.
const MinLeadTime = 2 * time.Hour

// InputLayout is the value format of an HTML datetime-local input.
const InputLayout = "2006-01-02T15:04"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps a form field to its French error message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return "invalid appointment: " + strings.Join(parts, "; ")
}

// ValidateStep checks the fields of one form step.
func ValidateStep(req CreateAppointmentRequest, step int, now time.Time) Errors {
	errs := Errors{}
	switch step {
	case StepContact:
		if strings.TrimSpace(req.ClientName) == "" {
			errs["clientName"] = "Le nom est requis"
		}
		if strings.TrimSpace(req.ClientEmail) == "" {
			errs["clientEmail"] = "L'email est requis"
		} else if !emailPattern.MatchString(req.ClientEmail) {
			errs["clientEmail"] = "L'email n'est pas valide"
		}
		if strings.TrimSpace(req.ClientPhone) == "" {
			errs["clientPhone"] = "Le téléphone est requis"
		}
	case StepDate:
		if req.AppointmentDate == "" {
			errs["appointmentDate"] = "La date et l'heure sont requises"
			break
		}
		at, err := ParseAppointmentDate(req.AppointmentDate, now.Location())
		if err != nil {
			errs["appointmentDate"] = "La date n'est pas valide"
		} else if at.Before(now) {
			errs["appointmentDate"] = "La date doit être dans le futur"
		}
	case StepDress:
		if req.DressType == "" {
			errs["dressType"] = "Le type de robe est requis"
		} else if !req.DressType.Valid() {
			errs["dressType"] = "Le type de robe n'est pas valide"
		}
	}
	return errs
}

// Validate checks every step and returns nil when the request is complete.
func Validate(req CreateAppointmentRequest, now time.Time) Errors {
	all := Errors{}
	for step := StepContact; step <= StepDress; step++ {
		for f, msg := range ValidateStep(req, step, now) {
			all[f] = msg
		}
	}
	if len(all) == 0 {
		return nil
	}
	return all
}

// FirstInvalidStep returns the first step with errors, or StepDone.
func FirstInvalidStep(req CreateAppointmentRequest, now time.Time) int {
	for step := StepContact; step <= StepDress; step++ {
		if len(ValidateStep(req, step, now)) > 0 {
			return step
		}
	}
	return StepDone
}

// ParseAppointmentDate accepts a datetime-local value in loc or an RFC 3339
// timestamp.
func ParseAppointmentDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(InputLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing appointment date %q: %w", s, err)
	}
	return t, nil
}

// MinDateTime is the earliest bookable time.
func MinDateTime(now time.Time) time.Time {
	return now.Add(MinLeadTime)
}

// MinDateTimeInput is MinDateTime formatted for the min attribute of a
// datetime-local input.
func MinDateTimeInput(now time.Time) string {
	return MinDateTime(now).Format(InputLayout)
}

// ApplyPreselection fills the dress type from the preselected dress.
func ApplyPreselection(req *CreateAppointmentRequest, dress catalog.Product) {
	req.DressID = dress.ID
	req.DressType = dress.Type
}
