package enquiry

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

type Service struct {
	enquiries repository.EnquiryRepository
}

func NewService(enquiries repository.EnquiryRepository) *Service {
	return &Service{enquiries: enquiries}
}

// Submit accepts enquiries from authenticated users and anonymous
// visitors alike; they are routed to administrative staff for response.
func (s *Service) Submit(ctx context.Context, req *model.CreateEnquiryRequest) (*model.Enquiry, error) {
	enquiry := &model.Enquiry{
		From:    req.From,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Type:    req.Type,
		Status:  model.EnquiryStatusPending,
	}

	created, err := s.enquiries.AddEnquiry(ctx, enquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to submit enquiry: %w", err)
	}
	return created, nil
}

func (s *Service) ListByType(ctx context.Context, enquiryType model.EnquiryType) ([]*model.Enquiry, error) {
	return s.enquiries.GetEnquiriesByType(ctx, enquiryType)
}

func (s *Service) ListAll(ctx context.Context) ([]*model.Enquiry, error) {
	return s.enquiries.ListEnquiries(ctx)
}

func (s *Service) Resolve(ctx context.Context, id, response string) (*model.Enquiry, error) {
	return s.enquiries.UpdateEnquiry(ctx, id, model.EnquiryStatusResolved, response)
}
