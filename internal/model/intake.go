package model

// IntakeSubmission is the landing-page request form forwarded verbatim
// to the external automation webhook.
type IntakeSubmission struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
	SubmittedDate string `json:"submittedDate"`
	SubmittedTime string `json:"submittedTime"`
}
