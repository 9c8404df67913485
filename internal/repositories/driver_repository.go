package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"becak/internal/domain"
	"becak/internal/domain/models"
	"becak/internal/logger"
)

// knownDrivers answers lookups when the drivers table has no row or the
// database is down.
var knownDrivers = map[string]models.Driver{
	"BCK-001": {VehicleCode: "BCK-001", Name: "Pak Slamet", Transport: domain.TransportBecak},
	"BCK-002": {VehicleCode: "BCK-002", Name: "Pak Joko", Transport: domain.TransportBecak},
	"BCK-003": {VehicleCode: "BCK-003", Name: "Pak Wahyu", Transport: domain.TransportBecak},
	"DLM-001": {VehicleCode: "DLM-001", Name: "Pak Sutrisno", Transport: domain.TransportDelman},
	"DLM-002": {VehicleCode: "DLM-002", Name: "Pak Bambang", Transport: domain.TransportDelman},
}

// DriverRepository maps vehicle codes to drivers.
type DriverRepository struct {
	DB *sql.DB
}

// NormalizeVehicleCode upper-cases and trims a user-typed code.
func NormalizeVehicleCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r DriverRepository) FindByVehicleCode(ctx context.Context, vehicleCode string) (models.Driver, error) {
	code := NormalizeVehicleCode(vehicleCode)
	if code == "" {
		return models.Driver{}, domain.ValidationError{Field: "vehicle_code", Msg: "Kode kendaraan wajib diisi."}
	}

	if r.DB != nil {
		var (
			d         models.Driver
			transport string
		)
		err := r.DB.QueryRowContext(ctx, `
			SELECT vehicle_code, name, COALESCE(transport,'')
			FROM drivers
			WHERE vehicle_code = ?
			LIMIT 1`, code).Scan(&d.VehicleCode, &d.Name, &transport)
		switch {
		case err == nil:
			if t, ok := domain.ParseTransport(transport); ok {
				d.Transport = t
			} else {
				d.Transport = transportFromCode(code)
			}
			return d, nil
		case errors.Is(err, sql.ErrNoRows):
		default:
			logger.Default().Warning("driver lookup failed, using built-in table",
				logger.String("vehicle_code", code), logger.Error(err))
		}
	}

	if d, ok := knownDrivers[code]; ok {
		return d, nil
	}
	return models.Driver{}, domain.NotFoundError{Resource: "pengemudi", ID: code}
}

func transportFromCode(code string) domain.Transport {
	if strings.HasPrefix(code, "DLM") {
		return domain.TransportDelman
	}
	return domain.TransportBecak
}
