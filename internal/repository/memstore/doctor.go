package memstore

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func (s *Store) GetDoctorByID(ctx context.Context, id string) (*model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.doctors {
		if s.doctors[i].ID == id {
			d := s.doctors[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("doctor %s: %w", id, repository.ErrNotFound)
}

func (s *Store) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctors := make([]*model.Doctor, 0, len(s.doctors))
	for i := range s.doctors {
		d := s.doctors[i]
		doctors = append(doctors, &d)
	}
	return doctors, nil
}

func (s *Store) AddDoctor(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *doctor
	stored.ID = s.newID()
	stored.Role = model.RoleDoctor
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt

	s.doctors = append(append([]model.Doctor(nil), s.doctors...), stored)
	out := stored
	return &out, nil
}

func (s *Store) UpdateDoctor(ctx context.Context, id string, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doctors {
		if s.doctors[i].ID != id {
			continue
		}
		next := append([]model.Doctor(nil), s.doctors...)
		d := &next[i]
		if req.Name != nil {
			d.Name = *req.Name
		}
		if req.Email != nil {
			d.Email = *req.Email
		}
		if req.Phone != nil {
			d.Phone = *req.Phone
		}
		if req.Specialization != nil {
			d.Specialization = *req.Specialization
		}
		if req.Bio != nil {
			d.Bio = *req.Bio
		}
		if req.Experience != nil {
			d.Experience = *req.Experience
		}
		if req.Education != nil {
			d.Education = *req.Education
		}
		if req.Availability != nil {
			d.Availability = append([]model.Availability(nil), (*req.Availability)...)
		}
		d.UpdatedAt = s.now()
		s.doctors = next
		out := *d
		return &out, nil
	}
	return nil, fmt.Errorf("doctor %s: %w", id, repository.ErrNotFound)
}
