package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID identifies orders and tariffs. The backend sends numeric ids while
// locally created orders use a string id, so both JSON forms are accepted.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Int64 parses the id as a positive integer.
func (id ID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(id)), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// CanMoveTo reports whether the lifecycle allows s -> next.
// Repeating the current status is allowed.
func (s OrderStatus) CanMoveTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case "", StatusPending:
		return next == StatusAccepted || next == StatusCancelled
	case StatusAccepted:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Transport is the kind of vehicle chosen on the order screen.
type Transport string

const (
	TransportBecak  Transport = "becak"
	TransportDelman Transport = "delman"
)

func ParseTransport(s string) (Transport, bool) {
	switch Transport(strings.ToLower(strings.TrimSpace(s))) {
	case TransportBecak:
		return TransportBecak, true
	case TransportDelman:
		return TransportDelman, true
	default:
		return "", false
	}
}

// TariffFilter is the active/inactive selector of the tariff admin screen.
type TariffFilter string

const (
	FilterAll      TariffFilter = "all"
	FilterActive   TariffFilter = "active"
	FilterInactive TariffFilter = "inactive"
)

func ParseTariffFilter(s string) TariffFilter {
	switch TariffFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterActive:
		return FilterActive
	case FilterInactive:
		return FilterInactive
	default:
		return FilterAll
	}
}
