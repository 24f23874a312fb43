package entity

import "github.com/shopspring/decimal"

// Doctor represents a doctor record owned by the remote catalog.
// Immutable from the client's perspective except via the admin create flow.
type Doctor struct {
	ID         int             `json:"id,omitempty"`
	DocumentID string          `json:"documentId,omitempty"`
	Name       string          `json:"name"`
	Speciality string          `json:"speciality"`
	Experience string          `json:"experience,omitempty"`
	Fee        decimal.Decimal `json:"fee"`
	Avatar     string          `json:"avatar,omitempty"`
	Address    string          `json:"address,omitempty"`
	About      string          `json:"about,omitempty"`
}
