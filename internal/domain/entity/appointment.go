package entity

import "github.com/shopspring/decimal"

// AppointmentState represents the lifecycle state of an appointment.
// The remote backend is the authoritative source; the local copy is a cache.
type AppointmentState string

const (
	AppointmentStatePending   AppointmentState = "pending"
	AppointmentStateApproved  AppointmentState = "approved"
	AppointmentStateCancelled AppointmentState = "cancelled"
	AppointmentStateCompleted AppointmentState = "completed"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s AppointmentState) IsValid() bool {
	switch s {
	case AppointmentStatePending, AppointmentStateApproved, AppointmentStateCancelled, AppointmentStateCompleted:
		return true
	}
	return false
}

// Appointment is a booking record linking a user and a doctor at a date/time.
// Doctor fields are denormalized snapshots taken at booking time.
type Appointment struct {
	ID            int              `json:"id,omitempty"`
	DocumentID    string           `json:"documentId,omitempty"`
	AppointmentID string           `json:"appointmentId,omitempty"`
	DoctorID      string           `json:"doctorId"`
	DoctorName    string           `json:"doctorName"`
	DoctorAvatar  string           `json:"doctorAvatar,omitempty"`
	Speciality    string           `json:"speciality,omitempty"`
	Address       string           `json:"address,omitempty"`
	About         string           `json:"about,omitempty"`
	Fee           decimal.Decimal  `json:"fee"`
	UserID        string           `json:"userId"`
	UserEmail     string           `json:"userEmail"`
	Date          string           `json:"appointmentDate"`
	Time          string           `json:"appointmentTime"`
	State         AppointmentState `json:"appointmentState"`
}

// IsPending checks if the appointment is awaiting approval
func (a *Appointment) IsPending() bool {
	return a.State == AppointmentStatePending
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.State == AppointmentStateCancelled
}
