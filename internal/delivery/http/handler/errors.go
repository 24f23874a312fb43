package handler

import (
	"errors"
	"net/http"

	"medibook-portal/internal/usecase"
	"medibook-portal/pkg/apierror"
	"medibook-portal/pkg/response"
)

// respondError translates usecase sentinels and the gateway error taxonomy
// into HTTP statuses. Backend-side failures surface as 502: the portal is
// healthy, the upstream call was not.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrOperationInFlight):
		response.Conflict(w, "Another appointment operation is in progress")
		return
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(w, "Please login first")
		return
	case errors.Is(err, usecase.ErrNoDoctorSelected):
		response.Error(w, http.StatusBadRequest, "Select a doctor before booking", nil)
		return
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
		return
	}

	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case apierror.KindValidation:
			response.Error(w, http.StatusBadRequest, apiErr.Message, nil)
		case apierror.KindAuth:
			response.Unauthorized(w, apiErr.Message)
		case apierror.KindForbidden:
			response.Forbidden(w, apiErr.Message)
		case apierror.KindNotFound:
			response.NotFound(w, apiErr.Message)
		case apierror.KindNetwork, apierror.KindTimeout, apierror.KindServer:
			response.BadGateway(w, apiErr.Message)
		default:
			response.InternalServerError(w, apiErr.Message)
		}
		return
	}

	response.InternalServerError(w, "")
}
