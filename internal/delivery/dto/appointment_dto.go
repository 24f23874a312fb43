package dto

import (
	"time"

	"medibook-portal/internal/domain/entity"
)

type BookAppointmentRequest struct {
	DoctorID string    `json:"doctor_id"`
	StartAt  time.Time `json:"start_at" validate:"required"`
}

type UpdateAppointmentRequest struct {
	State string `json:"state" validate:"required,oneof=pending approved cancelled completed"`
}

type AppointmentListResponse struct {
	Appointments []entity.Appointment `json:"appointments"`
	Total        int                  `json:"total"`
}
