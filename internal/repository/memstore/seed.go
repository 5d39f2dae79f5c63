package memstore

import (
	"time"

	"github.com/rbdtech/afc-portal-api/internal/model"
)

// seed loads the demo dataset. Seed records keep short fixed ids so the
// portal views and tests can reference them directly; records created
// at runtime get UUIDs.
func (s *Store) seed() {
	seededAt := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	base := func(id string) model.Base {
		return model.Base{ID: id, CreatedAt: seededAt, UpdatedAt: seededAt}
	}

	s.patients = []model.Patient{
		{
			User: model.User{
				Base:  base("pat1"),
				Email: "john.smith@email.com",
				Name:  "John Smith",
				Role:  model.RolePatient,
				Phone: "(617) 555-0101",
			},
			SSN:               "***-**-6789",
			DateOfBirth:       "1958-03-22",
			Address:           "42 Beacon St, Boston, MA 02108",
			EmergencyContact:  "Mary Smith (617) 555-0102",
			MedicalHistory:    []string{"Hypertension", "Type 2 diabetes"},
			LastVisit:         "2024-01-10",
			TotalAppointments: 12,
		},
		{
			User: model.User{
				Base:  base("pat2"),
				Email: "rosa.delgado@email.com",
				Name:  "Rosa Delgado",
				Role:  model.RolePatient,
				Phone: "(413) 555-0133",
			},
			SSN:               "***-**-4321",
			DateOfBirth:       "1964-11-02",
			Address:           "118 Maple Ave, Springfield, MA 01103",
			EmergencyContact:  "Luis Delgado (413) 555-0134",
			MedicalHistory:    []string{"Arthritis"},
			LastVisit:         "2024-01-08",
			TotalAppointments: 7,
		},
	}

	s.doctors = []model.Doctor{
		{
			User: model.User{
				Base:  base("doc1"),
				Email: "sarah.chen@afccare.com",
				Name:  "Dr. Sarah Chen",
				Role:  model.RoleDoctor,
				Phone: "(617) 555-0201",
			},
			Specialization:    "Geriatric Medicine",
			Bio:               "Specializes in adult foster care and chronic condition management.",
			Experience:        "15 years",
			Education:         "Tufts University School of Medicine",
			Patients:          28,
			TotalAppointments: 340,
			Availability: []model.Availability{
				{ID: "av1", DoctorID: "doc1", DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
				{ID: "av2", DoctorID: "doc1", DayOfWeek: 3, StartTime: "09:00", EndTime: "13:00", IsAvailable: true},
			},
		},
		{
			User: model.User{
				Base:  base("doc2"),
				Email: "marcus.hale@afccare.com",
				Name:  "Dr. Marcus Hale",
				Role:  model.RoleDoctor,
				Phone: "(617) 555-0202",
			},
			Specialization:    "Internal Medicine",
			Bio:               "Focus on in-home assessments for foster care placements.",
			Experience:        "9 years",
			Education:         "Boston University School of Medicine",
			Patients:          19,
			TotalAppointments: 185,
		},
	}

	s.admins = []model.Admin{
		{
			User: model.User{
				Base:  base("adm1"),
				Email: "admin@afccare.com",
				Name:  "Priya Raman",
				Role:  model.RoleAdmin,
				Phone: "(617) 555-0301",
			},
			Department: "Care Coordination",
		},
	}

	s.appointments = []model.Appointment{
		{
			Base:        base("apt1"),
			PatientID:   "pat1",
			DoctorID:    "doc1",
			Title:       "Quarterly Checkup",
			Type:        "Checkup",
			Date:        "2024-01-22",
			Time:        "10:00 AM",
			Status:      model.AppointmentStatusConfirmed,
			Category:    model.AppointmentCategoryUpcoming,
			Description: "Routine quarterly assessment with medication review.",
			Location:    "Boston Clinic, Room 4",
			Price:       "$120.00",
		},
		{
			Base:        base("apt2"),
			PatientID:   "pat2",
			DoctorID:    "doc1",
			Title:       "Follow-up Visit",
			Type:        "Follow-up",
			Date:        "2024-01-22",
			Time:        "1:30 PM",
			Status:      model.AppointmentStatusPending,
			Category:    model.AppointmentCategoryUpcoming,
			Description: "Joint pain follow-up.",
			Location:    "Boston Clinic, Room 4",
			Price:       "$95.00",
		},
		{
			Base:        base("apt3"),
			PatientID:   "pat1",
			DoctorID:    "doc2",
			Title:       "Home Assessment",
			Type:        "Assessment",
			Date:        "2024-01-05",
			Time:        "9:00 AM",
			Status:      model.AppointmentStatusCompleted,
			Category:    model.AppointmentCategoryPast,
			Description: "Annual in-home care environment assessment.",
			Location:    "Patient residence",
			Price:       "$150.00",
		},
	}

	s.details = []model.AppointmentDetails{
		{
			AppointmentID:    "apt3",
			MedicalNotes:     "Home environment adequate. Mobility aids in place.",
			Diagnosis:        "Stable; continue current care plan.",
			Prescription:     "Lisinopril 10mg daily",
			FollowUpRequired: true,
			FollowUpDate:     "2024-04-05",
		},
	}

	s.reschedules = []model.RescheduleRequest{
		{
			ID:            "req1",
			AppointmentID: "apt2",
			RequestedBy:   "pat2",
			OriginalDate:  "2024-01-22",
			OriginalTime:  "1:30 PM",
			NewDate:       "2024-01-24",
			NewTime:       "11:00 AM",
			Reason:        "Transport conflict",
			Status:        model.RescheduleStatusPending,
			CreatedAt:     seededAt,
		},
	}

	s.enquiries = []model.Enquiry{
		{
			ID:        "enq1",
			From:      "Helen Carter",
			Email:     "helen.carter@email.com",
			Subject:   "Eligibility question",
			Message:   "Is the AFC program available for residents outside Suffolk County?",
			Type:      model.EnquiryTypeOthers,
			Status:    model.EnquiryStatusPending,
			CreatedAt: seededAt,
		},
		{
			ID:        "enq2",
			From:      "Dr. Marcus Hale",
			Email:     "marcus.hale@afccare.com",
			Subject:   "Schedule portal access",
			Message:   "My weekly availability is not showing on the booking page.",
			Type:      model.EnquiryTypeDoctor,
			Status:    model.EnquiryStatusPending,
			CreatedAt: seededAt,
		},
	}
}
