package model

// Availability is a weekly recurring slot on a doctor's calendar.
// DayOfWeek is 0-6, Sunday through Saturday.
type Availability struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctor_id"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type Doctor struct {
	User
	Specialization    string         `json:"specialization"`
	Bio               string         `json:"bio"`
	Experience        string         `json:"experience"`
	Education         string         `json:"education"`
	Patients          int            `json:"patients"`
	TotalAppointments int            `json:"total_appointments"`
	Availability      []Availability `json:"availability,omitempty"`
}

type CreateDoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization" binding:"required"`
	Bio            string `json:"bio"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
}

type UpdateDoctorRequest struct {
	Name           *string         `json:"name"`
	Email          *string         `json:"email" binding:"omitempty,email"`
	Phone          *string         `json:"phone"`
	Specialization *string         `json:"specialization"`
	Bio            *string         `json:"bio"`
	Experience     *string         `json:"experience"`
	Education      *string         `json:"education"`
	Availability   *[]Availability `json:"availability"`
}
