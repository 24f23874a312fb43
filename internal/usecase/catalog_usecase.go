package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"medibook-portal/internal/converter"
	"medibook-portal/internal/delivery/dto"
	"medibook-portal/internal/domain/entity"
	"medibook-portal/internal/domain/gateway"
	"medibook-portal/internal/store"

	"github.com/sirupsen/logrus"
)

type CatalogUsecase interface {
	LoadDoctors(ctx context.Context) ([]entity.Doctor, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	Select(id string) (entity.Doctor, error)
}

type catalogUsecase struct {
	gw      gateway.Gateway
	log     *logrus.Logger
	catalog *store.CatalogStore
}

func NewCatalogUsecase(gw gateway.Gateway, log *logrus.Logger, catalog *store.CatalogStore) CatalogUsecase {
	return &catalogUsecase{
		gw:      gw,
		log:     log,
		catalog: catalog,
	}
}

// LoadDoctors refreshes the catalog store from the backend.
func (u *catalogUsecase) LoadDoctors(ctx context.Context) ([]entity.Doctor, error) {
	query := url.Values{}
	query.Set("populate", "*")

	result, err := u.gw.Call(ctx, http.MethodGet, "/doctors", nil, query)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %v", err)
		return nil, err
	}

	doctors := []entity.Doctor{}
	if len(result.Data) > 0 {
		doctors, err = converter.DoctorsFromJSON(result.Data)
		if err != nil {
			return nil, err
		}
	}

	u.catalog.SetAll(doctors)
	return doctors, nil
}

// CreateDoctor registers a new doctor (admin flow) and appends it to the catalog.
func (u *catalogUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	if req == nil {
		return nil, errors.New("doctor request is required")
	}

	result, err := u.gw.Call(ctx, http.MethodPost, "/doctors", map[string]any{"data": req}, nil)
	if err != nil {
		u.log.Warnf("Failed to create doctor %s: %v", req.Name, err)
		return nil, err
	}

	doctor, err := converter.DoctorFromJSON(result.Data)
	if err != nil {
		return nil, err
	}

	u.catalog.Add(*doctor)
	u.log.Infof("Doctor created: %s (%s)", doctor.Name, doctor.Speciality)
	return doctor, nil
}

// Select marks a doctor as the booking target.
func (u *catalogUsecase) Select(id string) (entity.Doctor, error) {
	if !u.catalog.SelectByID(id) {
		return entity.Doctor{}, ErrDoctorNotFound
	}
	doctor, _ := u.catalog.Selected()
	return doctor, nil
}
