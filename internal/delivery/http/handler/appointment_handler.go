package handler

import (
	"encoding/json"
	"net/http"

	"medibook-portal/internal/delivery/dto"
	"medibook-portal/internal/domain/entity"
	"medibook-portal/internal/service"
	"medibook-portal/internal/store"
	"medibook-portal/internal/usecase"
	"medibook-portal/pkg/response"
	"medibook-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	manager   usecase.AppointmentManager
	session   *store.SessionStore
	validator *validator.CustomValidator
}

func NewAppointmentHandler(manager usecase.AppointmentManager, session *store.SessionStore, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		manager:   manager,
		session:   session,
		validator: validator,
	}
}

// GetMyAppointments loads the current user's appointments (self-service view).
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	email := h.session.Current().Email
	if err := h.manager.LoadForUser(r.Context(), email); err != nil {
		respondError(w, err)
		return
	}

	view := h.manager.Snapshot()
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", dto.AppointmentListResponse{
		Appointments: view.Appointments,
		Total:        len(view.Appointments),
	})
}

// GetAllAppointments loads every appointment (administrative view).
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.LoadAll(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	view := h.manager.Snapshot()
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", dto.AppointmentListResponse{
		Appointments: view.Appointments,
		Total:        len(view.Appointments),
	})
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.manager.Book(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// RequestUpdate opens a confirmation prompt for a state transition. The
// transition itself runs when the prompt is confirmed.
func (h *AppointmentHandler) RequestUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	h.manager.RequestUpdate(id, entity.AppointmentState(req.State))
	response.Success(w, http.StatusAccepted, "Confirmation required", h.manager.Gate().Active())
}

// RequestDelete opens a confirmation prompt for removing an appointment.
func (h *AppointmentHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view := h.manager.Snapshot()
	for _, appointment := range view.Appointments {
		if appointment.DocumentID == id {
			h.manager.RequestDelete(appointment)
			response.Success(w, http.StatusAccepted, "Confirmation required", h.manager.Gate().Active())
			return
		}
	}

	response.NotFound(w, "Appointment not found")
}

// ConfirmPending runs the action guarded by the open confirmation prompt.
func (h *AppointmentHandler) ConfirmPending(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Gate().Confirm(r.Context()); err != nil {
		if err == service.ErrNoActiveConfirmation {
			response.Conflict(w, "No confirmation is pending")
			return
		}
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Action confirmed", h.manager.Snapshot())
}

// DismissPending closes the confirmation prompt without running the action.
func (h *AppointmentHandler) DismissPending(w http.ResponseWriter, r *http.Request) {
	h.manager.Gate().Hide()
	response.Success(w, http.StatusOK, "Confirmation dismissed", nil)
}

// GetConfirmation reports the prompt state for rendering.
func (h *AppointmentHandler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	gate := h.manager.Gate()
	response.Success(w, http.StatusOK, "Confirmation state", map[string]any{
		"state":  gate.State(),
		"config": gate.Active(),
	})
}
