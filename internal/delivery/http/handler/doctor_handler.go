package handler

import (
	"encoding/json"
	"net/http"

	"medibook-portal/internal/delivery/dto"
	"medibook-portal/internal/store"
	"medibook-portal/internal/usecase"
	"medibook-portal/pkg/response"
	"medibook-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	catalogUsecase usecase.CatalogUsecase
	catalog        *store.CatalogStore
	validator      *validator.CustomValidator
}

func NewDoctorHandler(catalogUsecase usecase.CatalogUsecase, catalog *store.CatalogStore, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		catalogUsecase: catalogUsecase,
		catalog:        catalog,
		validator:      validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.catalogUsecase.LoadDoctors(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// Catalog may be empty on a fresh start; refresh it before searching.
	if len(h.catalog.All()) == 0 {
		if _, err := h.catalogUsecase.LoadDoctors(r.Context()); err != nil {
			respondError(w, err)
			return
		}
	}

	for _, doctor := range h.catalog.All() {
		if doctor.DocumentID == id {
			response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
			return
		}
	}

	response.NotFound(w, "Doctor not found")
}

// SelectDoctor marks a doctor as the booking target for this session.
func (h *DoctorHandler) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	doctor, err := h.catalogUsecase.Select(id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor selected", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.catalogUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}
