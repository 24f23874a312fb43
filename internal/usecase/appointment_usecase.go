package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"medibook-portal/internal/converter"
	"medibook-portal/internal/delivery/dto"
	"medibook-portal/internal/domain/entity"
	"medibook-portal/internal/domain/gateway"
	"medibook-portal/internal/service"
	"medibook-portal/internal/store"
	"medibook-portal/pkg/apierror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrOperationInFlight = errors.New("another appointment operation is in progress")
	ErrNoDoctorSelected  = errors.New("no doctor is selected")
	ErrNotAuthenticated  = errors.New("no user is logged in")
	ErrDoctorNotFound    = errors.New("doctor not found")
)

const (
	msgLoadFailed   = "Failed to load appointments. Please try again."
	msgBookFailed   = "Failed to book appointment. Please try again."
	msgUpdateFailed = "Failed to update appointment. Please try again."
	msgDeleteFailed = "Failed to delete appointment. Please try again."

	minBookingLead = 30 * time.Minute

	dateLayout = "2006-01-02"
	timeLayout = "15:04:05.000"
)

// AppointmentView is a consistent copy of the manager's state for rendering.
// Readers never see (or mutate) the live list.
type AppointmentView struct {
	Appointments []entity.Appointment `json:"appointments"`
	Loading      bool                 `json:"loading"`
	Error        string               `json:"error,omitempty"`
	ProcessingID string               `json:"processingId,omitempty"`
}

type AppointmentManager interface {
	LoadAll(ctx context.Context) error
	LoadForUser(ctx context.Context, email string) error
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*entity.Appointment, error)
	Update(ctx context.Context, id string, state entity.AppointmentState) error
	Delete(ctx context.Context, id string) error
	RequestUpdate(id string, state entity.AppointmentState)
	RequestDelete(appointment entity.Appointment)
	Snapshot() AppointmentView
	Gate() *service.ConfirmationGate
}

// appointmentManager owns the in-memory appointment list and coordinates all
// remote mutations. Local state changes only after a confirmed server
// success; a failed call leaves the list untouched.
type appointmentManager struct {
	gw      gateway.Gateway
	log     *logrus.Logger
	catalog *store.CatalogStore
	session *store.SessionStore
	gate    *service.ConfirmationGate
	now     func() time.Time

	// opMu serializes mutating operations (update/delete). Concurrent
	// callers are rejected, not queued.
	opMu sync.Mutex

	mu           sync.RWMutex
	appointments []entity.Appointment
	loading      bool
	lastError    string
	processingID string
}

func NewAppointmentManager(
	gw gateway.Gateway,
	log *logrus.Logger,
	catalog *store.CatalogStore,
	session *store.SessionStore,
	gate *service.ConfirmationGate,
) AppointmentManager {
	return &appointmentManager{
		gw:      gw,
		log:     log,
		catalog: catalog,
		session: session,
		gate:    gate,
		now:     time.Now,
	}
}

// LoadAll fetches the entire appointment collection (administrative view).
func (m *appointmentManager) LoadAll(ctx context.Context) error {
	query := url.Values{}
	query.Set("populate", "*")
	return m.load(ctx, query)
}

// LoadForUser fetches the appointments belonging to the given requester
// (self-service view). The filter is applied server-side.
func (m *appointmentManager) LoadForUser(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("user email is required")
	}
	query := url.Values{}
	query.Set("populate", "*")
	query.Set("filters[userEmail][$eq]", email)
	return m.load(ctx, query)
}

func (m *appointmentManager) load(ctx context.Context, query url.Values) error {
	m.beginLoading()
	defer m.endLoading()

	result, err := m.gw.Call(ctx, http.MethodGet, "/appointments", nil, query)
	if err != nil {
		// The gateway detail stays in the log; the view gets a generic message.
		m.log.Warnf("Failed to load appointments: %v", err)
		m.setError(msgLoadFailed)
		return err
	}

	appointments := []entity.Appointment{}
	if len(result.Data) > 0 {
		appointments, err = converter.AppointmentsFromJSON(result.Data)
		if err != nil {
			m.log.Warnf("Failed to decode appointments: %v", err)
			m.setError(msgLoadFailed)
			return err
		}
	}

	m.mu.Lock()
	m.appointments = appointments
	m.mu.Unlock()
	return nil
}

// Book creates an appointment from the selected doctor and the current
// session identity. The requested time must be at least 30 minutes in the
// future; violations are rejected before any network call. Booking is a
// distinct flow from list-item mutation and never sets processingID.
func (m *appointmentManager) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*entity.Appointment, error) {
	if req == nil {
		return nil, errors.New("book request is required")
	}

	sess := m.session.Current()
	if !sess.LoggedIn {
		return nil, ErrNotAuthenticated
	}

	if req.DoctorID != "" && !m.catalog.SelectByID(req.DoctorID) {
		return nil, ErrDoctorNotFound
	}
	doctor, ok := m.catalog.Selected()
	if !ok {
		return nil, ErrNoDoctorSelected
	}

	if req.StartAt.Before(m.now().Add(minBookingLead)) {
		return nil, apierror.Validation("Please select a time at least 30 minutes from now")
	}

	input := entity.Appointment{
		AppointmentID: uuid.NewString(),
		DoctorID:      doctor.DocumentID,
		DoctorName:    doctor.Name,
		DoctorAvatar:  doctor.Avatar,
		Speciality:    doctor.Speciality,
		Address:       doctor.Address,
		About:         doctor.About,
		Fee:           doctor.Fee,
		UserID:        fmt.Sprintf("%d", sess.ID),
		UserEmail:     sess.Email,
		Date:          req.StartAt.Format(dateLayout),
		Time:          req.StartAt.Format(timeLayout),
		State:         entity.AppointmentStatePending,
	}

	result, err := m.gw.Call(ctx, http.MethodPost, "/appointments", map[string]any{"data": input}, nil)
	if err != nil {
		m.log.Warnf("Failed to book appointment with %s: %v", doctor.Name, err)
		m.setError(msgBookFailed)
		return nil, err
	}

	created, err := converter.AppointmentFromJSON(result.Data)
	if err != nil {
		m.setError(msgBookFailed)
		return nil, err
	}

	m.mu.Lock()
	m.appointments = append(m.appointments, *created)
	m.lastError = ""
	m.mu.Unlock()

	m.log.Infof("Appointment booked: doctor=%s date=%s time=%s", created.DoctorName, created.Date, created.Time)
	return created, nil
}

// Update transitions an appointment's state. On success the matching local
// entry is patched in place; on failure the list is untouched and the error
// is both recorded and returned.
func (m *appointmentManager) Update(ctx context.Context, id string, state entity.AppointmentState) error {
	if id == "" {
		return errors.New("appointment id is required")
	}
	if !state.IsValid() {
		return fmt.Errorf("invalid appointment state %q", state)
	}

	if !m.opMu.TryLock() {
		return ErrOperationInFlight
	}
	defer m.opMu.Unlock()

	m.setProcessing(id)
	defer m.clearProcessing()
	// The prompt never survives a completed operation.
	defer m.gate.Hide()

	payload := map[string]any{"data": map[string]any{"appointmentState": state}}
	if _, err := m.gw.Call(ctx, http.MethodPut, "/appointments/"+id, payload, nil); err != nil {
		m.log.Warnf("Failed to update appointment %s: %v", id, err)
		m.setError(msgUpdateFailed)
		return err
	}

	m.mu.Lock()
	for i := range m.appointments {
		if m.appointments[i].DocumentID == id {
			m.appointments[i].State = state
			break
		}
	}
	m.lastError = ""
	m.mu.Unlock()

	m.log.Infof("Appointment updated: id=%s state=%s", id, state)
	return nil
}

// Delete removes an appointment. On success the matching local entry is
// removed; all others keep their order.
func (m *appointmentManager) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("appointment id is required")
	}

	if !m.opMu.TryLock() {
		return ErrOperationInFlight
	}
	defer m.opMu.Unlock()

	m.setProcessing(id)
	defer m.clearProcessing()
	defer m.gate.Hide()

	if _, err := m.gw.Call(ctx, http.MethodDelete, "/appointments/"+id, nil, nil); err != nil {
		m.log.Warnf("Failed to delete appointment %s: %v", id, err)
		m.setError(msgDeleteFailed)
		return err
	}

	m.mu.Lock()
	kept := m.appointments[:0]
	for _, appointment := range m.appointments {
		if appointment.DocumentID != id {
			kept = append(kept, appointment)
		}
	}
	m.appointments = kept
	m.lastError = ""
	m.mu.Unlock()

	m.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

// RequestUpdate opens the confirmation prompt for a state transition. The
// transition runs when the prompt is confirmed.
func (m *appointmentManager) RequestUpdate(id string, state entity.AppointmentState) {
	action := "update"
	severity := service.SeverityWarning
	switch state {
	case entity.AppointmentStateApproved:
		action = "approve"
		severity = service.SeverityInfo
	case entity.AppointmentStateCancelled:
		action = "cancel"
	}

	m.gate.Show(service.ConfirmConfig{
		Title:       fmt.Sprintf("%s Appointment", titleCase(action)),
		Message:     fmt.Sprintf("Are you sure you want to %s this appointment?", action),
		Severity:    severity,
		ConfirmText: fmt.Sprintf("Yes, %s", action),
		CancelText:  "Cancel",
		OnConfirm: func(ctx context.Context) error {
			return m.Update(ctx, id, state)
		},
	})
}

// RequestDelete opens the confirmation prompt for removing an appointment.
func (m *appointmentManager) RequestDelete(appointment entity.Appointment) {
	id := appointment.DocumentID
	m.gate.Show(service.ConfirmConfig{
		Title:       "Cancel Appointment",
		Message:     fmt.Sprintf("Are you sure you want to cancel your appointment with Dr. %s on %s?", appointment.DoctorName, appointment.Date),
		Severity:    service.SeverityWarning,
		ConfirmText: "Yes, Cancel",
		CancelText:  "Keep Appointment",
		OnConfirm: func(ctx context.Context) error {
			return m.Delete(ctx, id)
		},
	})
}

// Snapshot returns a copy of the manager's state.
func (m *appointmentManager) Snapshot() AppointmentView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	appointments := make([]entity.Appointment, len(m.appointments))
	copy(appointments, m.appointments)

	return AppointmentView{
		Appointments: appointments,
		Loading:      m.loading,
		Error:        m.lastError,
		ProcessingID: m.processingID,
	}
}

func (m *appointmentManager) Gate() *service.ConfirmationGate {
	return m.gate
}

func (m *appointmentManager) beginLoading() {
	m.mu.Lock()
	m.loading = true
	m.lastError = ""
	m.mu.Unlock()
}

func (m *appointmentManager) endLoading() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

func (m *appointmentManager) setError(message string) {
	m.mu.Lock()
	m.lastError = message
	m.mu.Unlock()
}

func (m *appointmentManager) setProcessing(id string) {
	m.mu.Lock()
	m.processingID = id
	m.mu.Unlock()
}

func (m *appointmentManager) clearProcessing() {
	m.mu.Lock()
	m.processingID = ""
	m.mu.Unlock()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
