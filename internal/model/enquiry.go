package model

import "time"

type EnquiryType string

const (
	EnquiryTypeDoctor  EnquiryType = "doctor"
	EnquiryTypePatient EnquiryType = "patient"
	EnquiryTypeOthers  EnquiryType = "others"
)

type EnquiryStatus string

const (
	EnquiryStatusPending  EnquiryStatus = "pending"
	EnquiryStatusResolved EnquiryStatus = "resolved"
)

// Enquiry is a free-text message routed to administrative staff. From
// may be an authenticated user or an anonymous visitor.
type Enquiry struct {
	ID        string        `json:"id"`
	From      string        `json:"from"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Type      EnquiryType   `json:"type"`
	Status    EnquiryStatus `json:"status"`
	Response  string        `json:"response,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type CreateEnquiryRequest struct {
	From    string      `json:"from" binding:"required"`
	Email   string      `json:"email" binding:"required,email"`
	Subject string      `json:"subject" binding:"required"`
	Message string      `json:"message" binding:"required"`
	Type    EnquiryType `json:"type" binding:"required,oneof=doctor patient others"`
}

type ResolveEnquiryRequest struct {
	Response string `json:"response" binding:"required"`
}
