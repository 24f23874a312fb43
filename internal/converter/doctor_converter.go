package converter

import (
	"encoding/json"
	"fmt"

	"medibook-portal/internal/domain/entity"
)

// DoctorFromJSON decodes a single doctor record.
func DoctorFromJSON(raw json.RawMessage) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := json.Unmarshal(raw, &doctor); err != nil {
		return nil, fmt.Errorf("decode doctor: %w", err)
	}
	return &doctor, nil
}

// DoctorsFromJSON decodes the doctor catalog, preserving server order.
func DoctorsFromJSON(raw json.RawMessage) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}
