package appointment

import (
	"context"
	"fmt"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
	apperrors "github.com/rbdtech/afc-portal-api/pkg/errors"
)

type Service struct {
	appointments repository.AppointmentRepository
	reschedules  repository.RescheduleRepository
}

func NewService(appointments repository.AppointmentRepository, reschedules repository.RescheduleRepository) *Service {
	return &Service{
		appointments: appointments,
		reschedules:  reschedules,
	}
}

// CreateAppointment books a slot. New bookings start pending/upcoming
// and inactive; doctor-created ones are confirmed via UpdateAppointment.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	title := req.Title
	if title == "" {
		title = req.Type
	}

	appointment := &model.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Title:       title,
		Type:        req.Type,
		Date:        req.Date,
		Time:        req.Time,
		Status:      model.AppointmentStatusPending,
		Category:    model.AppointmentCategoryUpcoming,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
	}

	created, err := s.appointments.AddAppointment(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return created, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	return s.appointments.GetAppointmentByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	return s.appointments.GetAppointmentsByPatientID(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Appointment, error) {
	return s.appointments.GetAppointmentsByDoctorID(ctx, doctorID)
}

func (s *Service) ListToday(ctx context.Context) ([]*model.Appointment, error) {
	return s.appointments.GetTodaysAppointments(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]*model.Appointment, error) {
	return s.appointments.ListAppointments(ctx)
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	return s.appointments.UpdateAppointment(ctx, id, req)
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	return s.appointments.DeleteAppointment(ctx, id)
}

func (s *Service) GetActiveAppointment(ctx context.Context, doctorID string) (*model.Appointment, error) {
	return s.appointments.GetActiveAppointment(ctx, doctorID)
}

// StartSession marks the appointment as the one the doctor is
// attending; any previously active appointment is deactivated in the
// same store write.
func (s *Service) StartSession(ctx context.Context, id string) (*model.Appointment, error) {
	if _, err := s.appointments.SetAppointmentActive(ctx, id, true); err != nil {
		return nil, err
	}

	status := model.AppointmentStatusActive
	category := model.AppointmentCategoryCurrent
	return s.appointments.UpdateAppointment(ctx, id, &model.UpdateAppointmentRequest{
		Status:   &status,
		Category: &category,
	})
}

// CloseCase completes the active session and releases the doctor for
// the next assignment.
func (s *Service) CloseCase(ctx context.Context, id string) (*model.Appointment, error) {
	status := model.AppointmentStatusCompleted
	category := model.AppointmentCategoryPast
	inactive := false
	return s.appointments.UpdateAppointment(ctx, id, &model.UpdateAppointmentRequest{
		Status:             &status,
		Category:           &category,
		IsActiveWithDoctor: &inactive,
	})
}

func (s *Service) GetDetails(ctx context.Context, appointmentID string) (*model.AppointmentDetails, error) {
	return s.appointments.GetAppointmentDetails(ctx, appointmentID)
}

// UpdateDetails verifies the appointment exists before upserting its
// clinical record; details for deleted appointments stay readable but
// cannot be extended.
func (s *Service) UpdateDetails(ctx context.Context, appointmentID string, req *model.UpdateAppointmentDetailsRequest) (*model.AppointmentDetails, error) {
	if _, err := s.appointments.GetAppointmentByID(ctx, appointmentID); err != nil {
		return nil, err
	}
	return s.appointments.UpsertAppointmentDetails(ctx, appointmentID, req)
}

// RequestReschedule files the request and flips the appointment into
// reschedule_pending, carrying the proposed date and time.
func (s *Service) RequestReschedule(ctx context.Context, requestedBy string, req *model.CreateRescheduleRequest) (*model.RescheduleRequest, error) {
	appointment, err := s.appointments.GetAppointmentByID(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	request := &model.RescheduleRequest{
		AppointmentID: appointment.ID,
		RequestedBy:   requestedBy,
		OriginalDate:  appointment.Date,
		OriginalTime:  appointment.Time,
		NewDate:       req.NewDate,
		NewTime:       req.NewTime,
		Reason:        req.Reason,
		Status:        model.RescheduleStatusPending,
	}

	created, err := s.reschedules.AddRescheduleRequest(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to file reschedule request: %w", err)
	}

	status := model.AppointmentStatusReschedulePending
	if _, err := s.appointments.UpdateAppointment(ctx, appointment.ID, &model.UpdateAppointmentRequest{
		Status: &status,
		Date:   &req.NewDate,
		Time:   &req.NewTime,
	}); err != nil {
		return nil, fmt.Errorf("failed to mark appointment reschedule_pending: %w", err)
	}

	return created, nil
}

// ApproveReschedule applies the requested slot to the appointment and
// marks the request approved.
func (s *Service) ApproveReschedule(ctx context.Context, requestID string) (*model.RescheduleRequest, error) {
	if err := s.requirePendingReschedule(ctx, requestID); err != nil {
		return nil, err
	}

	request, err := s.reschedules.UpdateRescheduleRequest(ctx, requestID, model.RescheduleStatusApproved)
	if err != nil {
		return nil, err
	}

	status := model.AppointmentStatusRescheduled
	if _, err := s.appointments.UpdateAppointment(ctx, request.AppointmentID, &model.UpdateAppointmentRequest{
		Status: &status,
		Date:   &request.NewDate,
		Time:   &request.NewTime,
	}); err != nil {
		return nil, fmt.Errorf("failed to apply reschedule: %w", err)
	}
	return request, nil
}

// RejectReschedule restores the original slot and confirmed status.
func (s *Service) RejectReschedule(ctx context.Context, requestID string) (*model.RescheduleRequest, error) {
	if err := s.requirePendingReschedule(ctx, requestID); err != nil {
		return nil, err
	}

	request, err := s.reschedules.UpdateRescheduleRequest(ctx, requestID, model.RescheduleStatusRejected)
	if err != nil {
		return nil, err
	}

	status := model.AppointmentStatusConfirmed
	if _, err := s.appointments.UpdateAppointment(ctx, request.AppointmentID, &model.UpdateAppointmentRequest{
		Status: &status,
		Date:   &request.OriginalDate,
		Time:   &request.OriginalTime,
	}); err != nil {
		return nil, fmt.Errorf("failed to restore appointment slot: %w", err)
	}
	return request, nil
}

// requirePendingReschedule refuses a second decision on an
// already-resolved request.
func (s *Service) requirePendingReschedule(ctx context.Context, requestID string) error {
	request, err := s.reschedules.GetRescheduleRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != model.RescheduleStatusPending {
		return apperrors.BadRequest(fmt.Sprintf("reschedule request already %s", request.Status), nil)
	}
	return nil
}

func (s *Service) ListRescheduleRequests(ctx context.Context) ([]*model.RescheduleRequest, error) {
	return s.reschedules.ListRescheduleRequests(ctx)
}

func (s *Service) ListReschedulesByAppointment(ctx context.Context, appointmentID string) ([]*model.RescheduleRequest, error) {
	return s.reschedules.GetRescheduleRequestsByAppointmentID(ctx, appointmentID)
}
