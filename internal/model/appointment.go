package model

type AppointmentStatus string

const (
	AppointmentStatusPending           AppointmentStatus = "pending"
	AppointmentStatusConfirmed         AppointmentStatus = "confirmed"
	AppointmentStatusCompleted         AppointmentStatus = "completed"
	AppointmentStatusCancelled         AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled       AppointmentStatus = "rescheduled"
	AppointmentStatusReschedulePending AppointmentStatus = "reschedule_pending"
	AppointmentStatusActive            AppointmentStatus = "active"
	AppointmentStatusAttended          AppointmentStatus = "attended"
)

type AppointmentCategory string

const (
	AppointmentCategoryPast     AppointmentCategory = "past"
	AppointmentCategoryCurrent  AppointmentCategory = "current"
	AppointmentCategoryUpcoming AppointmentCategory = "upcoming"
)

// Appointment links a patient and a doctor for a dated slot. Date is an
// ISO calendar date (YYYY-MM-DD); Time is the free-text slot label shown
// in the portal. Price keeps the formatted currency string as entered.
type Appointment struct {
	Base
	PatientID          string              `json:"patient_id"`
	DoctorID           string              `json:"doctor_id"`
	Title              string              `json:"title"`
	Type               string              `json:"type"`
	Date               string              `json:"date"`
	Time               string              `json:"time"`
	Status             AppointmentStatus   `json:"status"`
	Category           AppointmentCategory `json:"category"`
	Description        string              `json:"description"`
	Location           string              `json:"location"`
	Price              string              `json:"price"`
	IsActiveWithDoctor bool                `json:"is_active_with_doctor"`
	Notes              string              `json:"notes,omitempty"`
}

// AppointmentDetails carries the optional clinical record, 1:1 with an
// appointment.
type AppointmentDetails struct {
	AppointmentID    string   `json:"appointment_id"`
	MedicalNotes     string   `json:"medical_notes,omitempty"`
	Diagnosis        string   `json:"diagnosis,omitempty"`
	Prescription     string   `json:"prescription,omitempty"`
	FollowUpRequired bool     `json:"follow_up_required"`
	FollowUpDate     string   `json:"follow_up_date,omitempty"`
	Documents        []string `json:"documents,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	DoctorID    string `json:"doctor_id" binding:"required"`
	Title       string `json:"title"`
	Type        string `json:"type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Price       string `json:"price"`
}

type UpdateAppointmentRequest struct {
	Title              *string              `json:"title"`
	Type               *string              `json:"type"`
	Date               *string              `json:"date"`
	Time               *string              `json:"time"`
	Status             *AppointmentStatus   `json:"status"`
	Category           *AppointmentCategory `json:"category"`
	Description        *string              `json:"description"`
	Location           *string              `json:"location"`
	Price              *string              `json:"price"`
	IsActiveWithDoctor *bool                `json:"is_active_with_doctor"`
	Notes              *string              `json:"notes"`
}

type UpdateAppointmentDetailsRequest struct {
	MedicalNotes     *string   `json:"medical_notes"`
	Diagnosis        *string   `json:"diagnosis"`
	Prescription     *string   `json:"prescription"`
	FollowUpRequired *bool     `json:"follow_up_required"`
	FollowUpDate     *string   `json:"follow_up_date"`
	Documents        *[]string `json:"documents"`
}
