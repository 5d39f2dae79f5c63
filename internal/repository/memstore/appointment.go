package memstore

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func (s *Store) GetAppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			a := s.appointments[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
}

// GetAppointmentsByPatientID filters in insertion order. No sort is
// applied and results are not paginated.
func (s *Store) GetAppointmentsByPatientID(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	return s.filterAppointments(func(a model.Appointment) bool { return a.PatientID == patientID }), nil
}

func (s *Store) GetAppointmentsByDoctorID(ctx context.Context, doctorID string) ([]*model.Appointment, error) {
	return s.filterAppointments(func(a model.Appointment) bool { return a.DoctorID == doctorID }), nil
}

// GetTodaysAppointments matches Appointment.Date against the store
// clock's calendar date by string equality. There is no timezone
// normalization against the entity's own locale.
func (s *Store) GetTodaysAppointments(ctx context.Context) ([]*model.Appointment, error) {
	today := s.today()
	return s.filterAppointments(func(a model.Appointment) bool { return a.Date == today }), nil
}

func (s *Store) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	return s.filterAppointments(func(model.Appointment) bool { return true }), nil
}

func (s *Store) AddAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *appointment
	stored.ID = s.newID()
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt

	s.appointments = append(append([]model.Appointment(nil), s.appointments...), stored)
	out := stored
	return &out, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		next := append([]model.Appointment(nil), s.appointments...)
		a := &next[i]
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Type != nil {
			a.Type = *req.Type
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Time != nil {
			a.Time = *req.Time
		}
		if req.Status != nil {
			a.Status = *req.Status
		}
		if req.Category != nil {
			a.Category = *req.Category
		}
		if req.Description != nil {
			a.Description = *req.Description
		}
		if req.Location != nil {
			a.Location = *req.Location
		}
		if req.Price != nil {
			a.Price = *req.Price
		}
		if req.IsActiveWithDoctor != nil {
			a.IsActiveWithDoctor = *req.IsActiveWithDoctor
		}
		if req.Notes != nil {
			a.Notes = *req.Notes
		}
		a.UpdatedAt = s.now()
		s.appointments = next
		out := *a
		return &out, nil
	}
	return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
}

// DeleteAppointment removes the record. Details and reschedule requests
// referencing it are retained; see the product note in DESIGN.md.
func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Appointment, 0, len(s.appointments))
	found := false
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			found = true
			continue
		}
		next = append(next, s.appointments[i])
	}
	if !found {
		return fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
	}
	s.appointments = next
	return nil
}

func (s *Store) GetActiveAppointment(ctx context.Context, doctorID string) (*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.appointments {
		if s.appointments[i].DoctorID == doctorID && s.appointments[i].IsActiveWithDoctor {
			a := s.appointments[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("active appointment for doctor %s: %w", doctorID, repository.ErrNotFound)
}

// SetAppointmentActive replaces the collection in one pass computed
// from a single snapshot: activating a target clears the flag
// everywhere else in the same write, so at most one appointment is ever
// active.
func (s *Store) SetAppointmentActive(ctx context.Context, id string, active bool) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]model.Appointment(nil), s.appointments...)
	var target *model.Appointment
	for i := range next {
		if next[i].ID == id {
			target = &next[i]
			continue
		}
		if active && next[i].IsActiveWithDoctor {
			next[i].IsActiveWithDoctor = false
		}
	}
	if target == nil {
		return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
	}
	target.IsActiveWithDoctor = active
	target.UpdatedAt = s.now()
	s.appointments = next
	out := *target
	return &out, nil
}

func (s *Store) GetAppointmentDetails(ctx context.Context, appointmentID string) (*model.AppointmentDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.details {
		if s.details[i].AppointmentID == appointmentID {
			d := s.details[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("details for appointment %s: %w", appointmentID, repository.ErrNotFound)
}

// UpsertAppointmentDetails merges into the existing record or creates
// one when the appointment has no details yet.
func (s *Store) UpsertAppointmentDetails(ctx context.Context, appointmentID string, req *model.UpdateAppointmentDetailsRequest) (*model.AppointmentDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply := func(d *model.AppointmentDetails) {
		if req.MedicalNotes != nil {
			d.MedicalNotes = *req.MedicalNotes
		}
		if req.Diagnosis != nil {
			d.Diagnosis = *req.Diagnosis
		}
		if req.Prescription != nil {
			d.Prescription = *req.Prescription
		}
		if req.FollowUpRequired != nil {
			d.FollowUpRequired = *req.FollowUpRequired
		}
		if req.FollowUpDate != nil {
			d.FollowUpDate = *req.FollowUpDate
		}
		if req.Documents != nil {
			d.Documents = append([]string(nil), (*req.Documents)...)
		}
	}

	for i := range s.details {
		if s.details[i].AppointmentID != appointmentID {
			continue
		}
		next := append([]model.AppointmentDetails(nil), s.details...)
		apply(&next[i])
		s.details = next
		out := next[i]
		return &out, nil
	}

	created := model.AppointmentDetails{AppointmentID: appointmentID}
	apply(&created)
	s.details = append(append([]model.AppointmentDetails(nil), s.details...), created)
	out := created
	return &out, nil
}

func (s *Store) filterAppointments(match func(model.Appointment) bool) []*model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Appointment
	for i := range s.appointments {
		if match(s.appointments[i]) {
			a := s.appointments[i]
			out = append(out, &a)
		}
	}
	return out
}
