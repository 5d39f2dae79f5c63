package model

// Patient extends User with intake and visit history fields. The SSN is
// stored masked: every digit except the final four is replaced with '*'
// while punctuation is preserved, e.g. "***-**-6789".
type Patient struct {
	User
	SSN               string   `json:"ssn"`
	DateOfBirth       string   `json:"date_of_birth"`
	Address           string   `json:"address"`
	EmergencyContact  string   `json:"emergency_contact"`
	MedicalHistory    []string `json:"medical_history"`
	LastVisit         string   `json:"last_visit,omitempty"`
	TotalAppointments int      `json:"total_appointments"`
}

type CreatePatientRequest struct {
	Name             string   `json:"name" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            string   `json:"phone"`
	SSN              string   `json:"ssn" binding:"omitempty,ssn"`
	DateOfBirth      string   `json:"date_of_birth"`
	Address          string   `json:"address"`
	EmergencyContact string   `json:"emergency_contact"`
	MedicalHistory   []string `json:"medical_history"`
}

type UpdatePatientRequest struct {
	Name             *string   `json:"name"`
	Email            *string   `json:"email" binding:"omitempty,email"`
	Phone            *string   `json:"phone"`
	DateOfBirth      *string   `json:"date_of_birth"`
	Address          *string   `json:"address"`
	EmergencyContact *string   `json:"emergency_contact"`
	MedicalHistory   *[]string `json:"medical_history"`
	LastVisit        *string   `json:"last_visit"`
}
