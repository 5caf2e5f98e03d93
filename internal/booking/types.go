// Package booking validates appointment requests for fittings and
// consultations. Appointments are not persisted: the site has no backend and
// confirmed bookings go through the external scheduling widget.
package booking

import "github.com/heritage-alg/heritage/internal/catalog"

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Label is the French label of the status.
func (s Status) Label() string { return catalog.StatusLabel(string(s)) }

// Color is the badge class of the status.
func (s Status) Color() string { return catalog.StatusColor(string(s)) }

// Appointment is a booked visit.
type Appointment struct {
	ID              string            `json:"id"`
	ClientName      string            `json:"clientName"`
	ClientEmail     string            `json:"clientEmail"`
	ClientPhone     string            `json:"clientPhone"`
	DressType       catalog.DressType `json:"dressType"`
	AppointmentDate string            `json:"appointmentDate"`
	Status          Status            `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

// CreateAppointmentRequest is the booking form payload.
type CreateAppointmentRequest struct {
	ClientName      string            `json:"clientName"`
	ClientEmail     string            `json:"clientEmail"`
	ClientPhone     string            `json:"clientPhone"`
	DressType       catalog.DressType `json:"dressType"`
	AppointmentDate string            `json:"appointmentDate"`
	Notes           string            `json:"notes,omitempty"`
	// DressID is the dress preselected from a product page, if any.
	DressID string `json:"dressId,omitempty"`
}

// Statistics counts appointments per status.
type Statistics struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
	Today     int `json:"today"`
}
