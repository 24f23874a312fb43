package converter

import (
	"encoding/json"
	"fmt"

	"medibook-portal/internal/domain/entity"
)

// AppointmentFromJSON decodes a single appointment record from the backend's
// raw payload.
func AppointmentFromJSON(raw json.RawMessage) (*entity.Appointment, error) {
	var appointment entity.Appointment
	if err := json.Unmarshal(raw, &appointment); err != nil {
		return nil, fmt.Errorf("decode appointment: %w", err)
	}
	return &appointment, nil
}

// AppointmentsFromJSON decodes an appointment collection, preserving server order.
func AppointmentsFromJSON(raw json.RawMessage) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}
