package memstore

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func (s *Store) GetRescheduleRequestByID(ctx context.Context, id string) (*model.RescheduleRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.reschedules {
		if s.reschedules[i].ID == id {
			r := s.reschedules[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("reschedule request %s: %w", id, repository.ErrNotFound)
}

func (s *Store) GetRescheduleRequestsByAppointmentID(ctx context.Context, appointmentID string) ([]*model.RescheduleRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.RescheduleRequest
	for i := range s.reschedules {
		if s.reschedules[i].AppointmentID == appointmentID {
			r := s.reschedules[i]
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s *Store) ListRescheduleRequests(ctx context.Context) ([]*model.RescheduleRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.RescheduleRequest, 0, len(s.reschedules))
	for i := range s.reschedules {
		r := s.reschedules[i]
		out = append(out, &r)
	}
	return out, nil
}

// AddRescheduleRequest stamps CreatedAt only; requests are never
// updated except for their status.
func (s *Store) AddRescheduleRequest(ctx context.Context, request *model.RescheduleRequest) (*model.RescheduleRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *request
	stored.ID = s.newID()
	stored.CreatedAt = s.now()
	if stored.Status == "" {
		stored.Status = model.RescheduleStatusPending
	}

	s.reschedules = append(append([]model.RescheduleRequest(nil), s.reschedules...), stored)
	out := stored
	return &out, nil
}

func (s *Store) UpdateRescheduleRequest(ctx context.Context, id string, status model.RescheduleStatus) (*model.RescheduleRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reschedules {
		if s.reschedules[i].ID != id {
			continue
		}
		next := append([]model.RescheduleRequest(nil), s.reschedules...)
		next[i].Status = status
		s.reschedules = next
		out := next[i]
		return &out, nil
	}
	return nil, fmt.Errorf("reschedule request %s: %w", id, repository.ErrNotFound)
}
