// Package memstore implements repository.Store over in-memory
// collections. Every write replaces the affected collection with a new
// slice computed from a single snapshot under the write lock, so
// readers never observe a half-applied multi-step sequence.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rbdtech/afc-portal-api/internal/model"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	patients     []model.Patient
	doctors      []model.Doctor
	admins       []model.Admin
	appointments []model.Appointment
	details      []model.AppointmentDetails
	reschedules  []model.RescheduleRequest
	enquiries    []model.Enquiry
}

// New returns an empty store.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty store that derives "today" from the
// given clock instead of the process clock.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// NewSeeded returns a store pre-populated with the demo dataset.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

func (s *Store) newID() string {
	return uuid.NewString()
}

// today is the store's calendar date in ISO form, matched by string
// equality against Appointment.Date.
func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}
