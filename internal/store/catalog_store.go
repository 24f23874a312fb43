package store

import (
	"sync"

	"medibook-portal/internal/domain/entity"
)

// CatalogStore holds the doctor list and the currently selected doctor.
// Doctors are read-only from the portal's perspective except for the admin
// create flow, which appends.
type CatalogStore struct {
	mu       sync.RWMutex
	doctors  []entity.Doctor
	selected *entity.Doctor
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// SetAll replaces the doctor list and drops any selection that no longer exists.
func (s *CatalogStore) SetAll(doctors []entity.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doctors = make([]entity.Doctor, len(doctors))
	copy(s.doctors, doctors)

	if s.selected != nil && s.findLocked(s.selected.DocumentID) == nil {
		s.selected = nil
	}
}

// Add appends a doctor (admin create flow).
func (s *CatalogStore) Add(doctor entity.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doctors = append(s.doctors, doctor)
}

// All returns a copy of the doctor list.
func (s *CatalogStore) All() []entity.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctors := make([]entity.Doctor, len(s.doctors))
	copy(doctors, s.doctors)
	return doctors
}

// SetSelected points the selection at the given doctor.
func (s *CatalogStore) SetSelected(doctor entity.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = &doctor
}

// SelectByID selects the doctor with the given id from the list.
// Returns false when no doctor matches; the previous selection is kept.
func (s *CatalogStore) SelectByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctor := s.findLocked(id)
	if doctor == nil {
		return false
	}
	s.selected = doctor
	return true
}

// Selected returns the selected doctor, if any.
func (s *CatalogStore) Selected() (entity.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return entity.Doctor{}, false
	}
	return *s.selected, true
}

// ClearSelected drops the selection.
func (s *CatalogStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
}

func (s *CatalogStore) findLocked(id string) *entity.Doctor {
	for i := range s.doctors {
		if s.doctors[i].DocumentID == id {
			return &s.doctors[i]
		}
	}
	return nil
}
