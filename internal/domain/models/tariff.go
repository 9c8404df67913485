package models

import (
	"fmt"
	"strings"

	"becak/internal/domain"
)

// Tariff is a priced distance tier (the order screen calls it a distance option).
type Tariff struct {
	ID           domain.ID `json:"id"`
	Name         string    `json:"name"`
	Distance     string    `json:"distance"`
	Price        Amount    `json:"price"`
	Destinations string    `json:"destinations"`
	MinDistance  Km        `json:"min_distance"`
	MaxDistance  Km        `json:"max_distance"`
	IsActive     bool      `json:"is_active"`
}

// DistanceLabel returns the display range, deriving it from min/max when the
// backend did not send one.
func (t Tariff) DistanceLabel() string {
	if d := strings.TrimSpace(t.Distance); d != "" {
		return d
	}
	return fmt.Sprintf("%s-%s km", t.MinDistance, t.MaxDistance)
}

// ToggleResult is the backend's answer to a status toggle. IsActive is nil
// when the response did not carry the new state.
type ToggleResult struct {
	Tariff   Tariff
	IsActive *bool
}

// TariffInput is the create/update payload of the admin screen.
type TariffInput struct {
	Name         string  `json:"name"`
	Price        int64   `json:"price"`
	Destinations string  `json:"destinations"`
	MinDistance  float64 `json:"min_distance"`
	MaxDistance  float64 `json:"max_distance"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (in TariffInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "Nama tarif wajib diisi"}
	}
	if in.Price < 0 {
		return domain.ValidationError{Field: "price", Msg: "Harga tidak boleh negatif"}
	}
	if in.MinDistance < 0 {
		return domain.ValidationError{Field: "min_distance", Msg: "Jarak minimum tidak boleh negatif"}
	}
	if in.MinDistance > in.MaxDistance {
		return domain.ValidationError{Field: "max_distance", Msg: "Jarak maksimum harus lebih besar atau sama dengan jarak minimum"}
	}
	return nil
}
