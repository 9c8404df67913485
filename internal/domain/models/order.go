package models

import (
	"encoding/json"
	"strings"
	"time"

	"becak/internal/domain"
)

type Order struct {
	ID             domain.ID          `json:"id"`
	OrderNumber    string             `json:"order_number,omitempty"`
	VehicleCode    string             `json:"vehicle_code"`
	DistanceOption Tariff             `json:"distance_option"`
	Timestamp      time.Time          `json:"timestamp"`
	Status         domain.OrderStatus `json:"status"`
	DriverID       domain.ID          `json:"driver_id,omitempty"`
	Phone          string             `json:"phone,omitempty"`
	CustomerName   string             `json:"customer_name,omitempty"`
	PickupLocation string             `json:"pickup_location,omitempty"`
	Destination    string             `json:"destination,omitempty"`
	TotalAmount    Amount             `json:"total_amount,omitempty"`
	Rating         float64            `json:"rating,omitempty"`
}

// Amount is what the customer pays: the recorded total, else the tariff price.
func (o Order) Amount() int64 {
	if o.TotalAmount > 0 {
		return int64(o.TotalAmount)
	}
	return int64(o.DistanceOption.Price)
}

var orderTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON accepts the backend's naming variants (created_at, tariff,
// tariff_id) next to the canonical fields.
func (o *Order) UnmarshalJSON(b []byte) error {
	type plain Order
	var aux struct {
		plain
		Timestamp string    `json:"timestamp"`
		CreatedAt string    `json:"created_at"`
		Tariff    *Tariff   `json:"tariff"`
		TariffID  domain.ID `json:"tariff_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*o = Order(aux.plain)

	for _, raw := range []string{aux.Timestamp, aux.CreatedAt} {
		if t, ok := parseOrderTime(raw); ok {
			o.Timestamp = t
			break
		}
	}
	if o.DistanceOption.ID == "" && aux.Tariff != nil {
		o.DistanceOption = *aux.Tariff
	}
	if o.DistanceOption.ID == "" && aux.TariffID != "" {
		o.DistanceOption.ID = aux.TariffID
	}
	if o.Status == "" {
		o.Status = domain.StatusPending
	}
	return nil
}

func parseOrderTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range orderTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateOrderRequest is the body sent to the order-creation endpoint.
type CreateOrderRequest struct {
	VehicleCode    string `json:"vehicle_code"`
	TariffID       int64  `json:"tariff_id"`
	Phone          string `json:"phone"`
	CustomerName   string `json:"customer_name,omitempty"`
	PickupLocation string `json:"pickup_location,omitempty"`
	Destination    string `json:"destination,omitempty"`
	TotalAmount    int64  `json:"total_amount"`
}

// OrderUpdate is a partial update sent to the order-update endpoint.
type OrderUpdate struct {
	Status   domain.OrderStatus `json:"status,omitempty"`
	DriverID string             `json:"driver_id,omitempty"`
}
