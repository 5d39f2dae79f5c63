package memstore

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func (s *Store) GetPatientByID(ctx context.Context, id string) (*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.patients {
		if s.patients[i].ID == id {
			p := s.patients[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("patient %s: %w", id, repository.ErrNotFound)
}

func (s *Store) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]*model.Patient, 0, len(s.patients))
	for i := range s.patients {
		p := s.patients[i]
		patients = append(patients, &p)
	}
	return patients, nil
}

// AddPatient assigns the id and timestamps, appends the record and
// returns the stored copy.
func (s *Store) AddPatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *patient
	stored.ID = s.newID()
	stored.Role = model.RolePatient
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt

	s.patients = append(append([]model.Patient(nil), s.patients...), stored)
	out := stored
	return &out, nil
}

func (s *Store) UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patients {
		if s.patients[i].ID != id {
			continue
		}
		next := append([]model.Patient(nil), s.patients...)
		p := &next[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Email != nil {
			p.Email = *req.Email
		}
		if req.Phone != nil {
			p.Phone = *req.Phone
		}
		if req.DateOfBirth != nil {
			p.DateOfBirth = *req.DateOfBirth
		}
		if req.Address != nil {
			p.Address = *req.Address
		}
		if req.EmergencyContact != nil {
			p.EmergencyContact = *req.EmergencyContact
		}
		if req.MedicalHistory != nil {
			p.MedicalHistory = append([]string(nil), (*req.MedicalHistory)...)
		}
		if req.LastVisit != nil {
			p.LastVisit = *req.LastVisit
		}
		p.UpdatedAt = s.now()
		s.patients = next
		out := *p
		return &out, nil
	}
	return nil, fmt.Errorf("patient %s: %w", id, repository.ErrNotFound)
}
