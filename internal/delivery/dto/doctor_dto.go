package dto

import "github.com/shopspring/decimal"

type CreateDoctorRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	Speciality string          `json:"speciality" validate:"required,max=100"`
	Experience string          `json:"experience"`
	Fee        decimal.Decimal `json:"fee" validate:"required"`
	Avatar     string          `json:"avatar"`
	Address    string          `json:"address"`
	About      string          `json:"about"`
}
