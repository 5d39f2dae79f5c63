package memstore

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

func (s *Store) GetEnquiriesByType(ctx context.Context, enquiryType model.EnquiryType) ([]*model.Enquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Enquiry
	for i := range s.enquiries {
		if s.enquiries[i].Type == enquiryType {
			e := s.enquiries[i]
			out = append(out, &e)
		}
	}
	return out, nil
}

func (s *Store) ListEnquiries(ctx context.Context) ([]*model.Enquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Enquiry, 0, len(s.enquiries))
	for i := range s.enquiries {
		e := s.enquiries[i]
		out = append(out, &e)
	}
	return out, nil
}

func (s *Store) AddEnquiry(ctx context.Context, enquiry *model.Enquiry) (*model.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *enquiry
	stored.ID = s.newID()
	stored.CreatedAt = s.now()
	if stored.Status == "" {
		stored.Status = model.EnquiryStatusPending
	}

	s.enquiries = append(append([]model.Enquiry(nil), s.enquiries...), stored)
	out := stored
	return &out, nil
}

func (s *Store) UpdateEnquiry(ctx context.Context, id string, status model.EnquiryStatus, response string) (*model.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.enquiries {
		if s.enquiries[i].ID != id {
			continue
		}
		next := append([]model.Enquiry(nil), s.enquiries...)
		next[i].Status = status
		if response != "" {
			next[i].Response = response
		}
		s.enquiries = next
		out := next[i]
		return &out, nil
	}
	return nil, fmt.Errorf("enquiry %s: %w", id, repository.ErrNotFound)
}
