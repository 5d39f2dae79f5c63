package doctor

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
)

type Service struct {
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
}

func NewService(doctors repository.DoctorRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{doctors: doctors, appointments: appointments}
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	return s.doctors.GetDoctorByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.doctors.ListDoctors(ctx)
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		User: model.User{
			Email: req.Email,
			Name:  req.Name,
			Role:  model.RoleDoctor,
			Phone: req.Phone,
		},
		Specialization: req.Specialization,
		Bio:            req.Bio,
		Experience:     req.Experience,
		Education:      req.Education,
	}

	created, err := s.doctors.AddDoctor(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id string, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	return s.doctors.UpdateDoctor(ctx, id, req)
}

// GetAvailability returns the doctor's weekly slots for the booking
// view.
func (s *Service) GetAvailability(ctx context.Context, id string) ([]model.Availability, error) {
	doctor, err := s.doctors.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doctor.Availability, nil
}

func (s *Service) ListAppointments(ctx context.Context, doctorID string) ([]*model.Appointment, error) {
	if _, err := s.doctors.GetDoctorByID(ctx, doctorID); err != nil {
		return nil, err
	}
	return s.appointments.GetAppointmentsByDoctorID(ctx, doctorID)
}
