package repository

import (
	"context"
	"errors"

	"github.com/rbdtech/afc-portal-api/internal/model"
)

// ErrNotFound is returned by reads for missing ids and by updates and
// deletes that matched no record. Callers should test with errors.Is.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	// GetUserByEmail scans patients, then doctors, then admins and
	// returns the first match. Email uniqueness across collections is
	// not enforced.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUsersByRole(ctx context.Context, role model.Role) ([]*model.User, error)
	UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error)
}

type PatientRepository interface {
	GetPatientByID(ctx context.Context, id string) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	AddPatient(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (*model.Patient, error)
}

type DoctorRepository interface {
	GetDoctorByID(ctx context.Context, id string) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	AddDoctor(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, req *model.UpdateDoctorRequest) (*model.Doctor, error)
}

type AppointmentRepository interface {
	GetAppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	GetAppointmentsByPatientID(ctx context.Context, patientID string) ([]*model.Appointment, error)
	GetAppointmentsByDoctorID(ctx context.Context, doctorID string) ([]*model.Appointment, error)
	GetTodaysAppointments(ctx context.Context) ([]*model.Appointment, error)
	ListAppointments(ctx context.Context) ([]*model.Appointment, error)
	AddAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error

	// GetActiveAppointment returns the doctor's appointment flagged as
	// currently being attended, if any.
	GetActiveAppointment(ctx context.Context, doctorID string) (*model.Appointment, error)
	// SetAppointmentActive clears the active flag across the whole
	// collection and sets it on the target in one atomic replacement.
	SetAppointmentActive(ctx context.Context, id string, active bool) (*model.Appointment, error)

	GetAppointmentDetails(ctx context.Context, appointmentID string) (*model.AppointmentDetails, error)
	UpsertAppointmentDetails(ctx context.Context, appointmentID string, req *model.UpdateAppointmentDetailsRequest) (*model.AppointmentDetails, error)
}

type RescheduleRepository interface {
	GetRescheduleRequestByID(ctx context.Context, id string) (*model.RescheduleRequest, error)
	GetRescheduleRequestsByAppointmentID(ctx context.Context, appointmentID string) ([]*model.RescheduleRequest, error)
	ListRescheduleRequests(ctx context.Context) ([]*model.RescheduleRequest, error)
	AddRescheduleRequest(ctx context.Context, request *model.RescheduleRequest) (*model.RescheduleRequest, error)
	UpdateRescheduleRequest(ctx context.Context, id string, status model.RescheduleStatus) (*model.RescheduleRequest, error)
}

type EnquiryRepository interface {
	GetEnquiriesByType(ctx context.Context, enquiryType model.EnquiryType) ([]*model.Enquiry, error)
	ListEnquiries(ctx context.Context) ([]*model.Enquiry, error)
	AddEnquiry(ctx context.Context, enquiry *model.Enquiry) (*model.Enquiry, error)
	UpdateEnquiry(ctx context.Context, id string, status model.EnquiryStatus, response string) (*model.Enquiry, error)
}

// Store is the single source of truth for all portal collections.
type Store interface {
	UserRepository
	PatientRepository
	DoctorRepository
	AppointmentRepository
	RescheduleRepository
	EnquiryRepository
}
