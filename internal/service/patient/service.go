package patient

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
	"github.com/rbdtech/afc-portal-api/pkg/security"
)

type Service struct {
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
}

func NewService(patients repository.PatientRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{patients: patients, appointments: appointments}
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	return s.patients.GetPatientByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.patients.ListPatients(ctx)
}

// CreatePatient is the admin-side intake path; the SSN is masked before
// it ever reaches the store.
func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	history := req.MedicalHistory
	if history == nil {
		history = []string{}
	}

	patient := &model.Patient{
		User: model.User{
			Email: req.Email,
			Name:  req.Name,
			Role:  model.RolePatient,
			Phone: req.Phone,
		},
		SSN:              security.MaskSSN(req.SSN),
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		MedicalHistory:   history,
	}

	created, err := s.patients.AddPatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return created, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (*model.Patient, error) {
	return s.patients.UpdatePatient(ctx, id, req)
}

func (s *Service) ListAppointments(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	if _, err := s.patients.GetPatientByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.appointments.GetAppointmentsByPatientID(ctx, patientID)
}
