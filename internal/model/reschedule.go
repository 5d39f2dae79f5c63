package model

import "time"

type RescheduleStatus string

const (
	RescheduleStatusPending  RescheduleStatus = "pending"
	RescheduleStatusApproved RescheduleStatus = "approved"
	RescheduleStatusRejected RescheduleStatus = "rejected"
)

// RescheduleRequest proposes a date/time change to an existing
// appointment, pending admin approval.
type RescheduleRequest struct {
	ID            string           `json:"id"`
	AppointmentID string           `json:"appointment_id"`
	RequestedBy   string           `json:"requested_by"`
	OriginalDate  string           `json:"original_date"`
	OriginalTime  string           `json:"original_time"`
	NewDate       string           `json:"new_date"`
	NewTime       string           `json:"new_time"`
	Reason        string           `json:"reason"`
	Status        RescheduleStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CreateRescheduleRequest is bound from the request body; the
// appointment id comes from the route path.
type CreateRescheduleRequest struct {
	AppointmentID string `json:"appointment_id"`
	NewDate       string `json:"new_date" binding:"required"`
	NewTime       string `json:"new_time" binding:"required"`
	Reason        string `json:"reason"`
}
