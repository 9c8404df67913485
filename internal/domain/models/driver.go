package models

import "becak/internal/domain"

// Driver owns a becak or delman identified by its vehicle code.
type Driver struct {
	VehicleCode string           `json:"vehicle_code"`
	Name        string           `json:"name"`
	Transport   domain.Transport `json:"transport"`
}
