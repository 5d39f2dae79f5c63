package memstore

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func (s *Store) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findUserLocked(func(u model.User) bool { return u.ID == id }); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

// GetUserByEmail scans patients, then doctors, then admins, first match
// wins. The store does not enforce cross-collection email uniqueness.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findUserLocked(func(u model.User) bool { return u.Email == email }); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("user with email %s: %w", email, repository.ErrNotFound)
}

func (s *Store) GetUsersByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []*model.User
	switch role {
	case model.RolePatient:
		for i := range s.patients {
			u := s.patients[i].User
			users = append(users, &u)
		}
	case model.RoleDoctor:
		for i := range s.doctors {
			u := s.doctors[i].User
			users = append(users, &u)
		}
	case model.RoleAdmin:
		for i := range s.admins {
			u := s.admins[i].User
			users = append(users, &u)
		}
	}
	return users, nil
}

// UpdateUser merges the partial update into whichever collection holds
// the record, keyed by the record's role.
func (s *Store) UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply := func(u *model.User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		u.UpdatedAt = s.now()
	}

	for i := range s.patients {
		if s.patients[i].ID == id {
			next := append([]model.Patient(nil), s.patients...)
			apply(&next[i].User)
			s.patients = next
			u := next[i].User
			return &u, nil
		}
	}
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			next := append([]model.Doctor(nil), s.doctors...)
			apply(&next[i].User)
			s.doctors = next
			u := next[i].User
			return &u, nil
		}
	}
	for i := range s.admins {
		if s.admins[i].ID == id {
			next := append([]model.Admin(nil), s.admins...)
			apply(&next[i].User)
			s.admins = next
			u := next[i].User
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

func (s *Store) findUserLocked(match func(model.User) bool) *model.User {
	for i := range s.patients {
		if match(s.patients[i].User) {
			u := s.patients[i].User
			return &u
		}
	}
	for i := range s.doctors {
		if match(s.doctors[i].User) {
			u := s.doctors[i].User
			return &u
		}
	}
	for i := range s.admins {
		if match(s.admins[i].User) {
			u := s.admins[i].User
			return &u
		}
	}
	return nil
}
