package services

import (
	"context"
	"strings"
	"sync"

	"becak/internal/domain"
	"becak/internal/domain/models"
	"becak/internal/logger"
)

// EntryState is where the order form is in its flow.
type EntryState string

const (
	StateNoTransport       EntryState = "no-transport-selected"
	StateTransportSelected EntryState = "transport-selected"
	StateTariffsLoading    EntryState = "tariffs-loading"
	StateReady             EntryState = "ready-for-submission"
	StateSubmitting        EntryState = "submitting"
	StateNavigated         EntryState = "navigated-to-payment"
)

const (
	msgVehicleCodeRequired = "Kode kendaraan wajib diisi."
	msgPhoneRequired       = "Nomor telepon wajib diisi."
	msgTariffRequired      = "Silakan pilih tarif tujuan."
	msgInvalidTariffID     = "ID tarif tidak valid."
)

// FallbackTariffs keeps the order form usable when the backend is unreachable.
func FallbackTariffs() []models.Tariff {
	return []models.Tariff{
		{ID: "1", Name: "Dekat", Distance: "0-2 km", Price: 10000, Destinations: "Pasar, Masjid Agung, Alun-alun", MinDistance: 0, MaxDistance: 2, IsActive: true},
		{ID: "2", Name: "Sedang", Distance: "2-5 km", Price: 20000, Destinations: "Stasiun, Terminal, Kampus", MinDistance: 2, MaxDistance: 5, IsActive: true},
		{ID: "3", Name: "Jauh", Distance: "5-10 km", Price: 35000, Destinations: "Pantai, Objek Wisata, Keraton", MinDistance: 5, MaxDistance: 10, IsActive: true},
	}
}

// PublicTariffSource lists the tariffs a customer may choose from.
type PublicTariffSource interface {
	GetTariffsPublic(ctx context.Context) ([]models.Tariff, error)
}

type OrderForm struct {
	Transport   string `json:"transport"`
	VehicleCode string `json:"vehicle_code"`
	Phone       string `json:"phone"`
	TariffID    string `json:"tariff_id"`
}

// PaymentNav is the navigation state handed to the payment screen.
type PaymentNav struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// EntryView is a snapshot of the order screen.
type EntryView struct {
	State         EntryState       `json:"state"`
	Transport     domain.Transport `json:"transport,omitempty"`
	Tariffs       []models.Tariff  `json:"tariffs"`
	UsingFallback bool             `json:"using_fallback"`
	Error         string           `json:"error,omitempty"`
}

// OrderEntry drives the order form of one session.
type OrderEntry struct {
	mu            sync.Mutex
	state         EntryState
	transport     domain.Transport
	tariffs       []models.Tariff
	usingFallback bool
	lastErr       string
}

func NewOrderEntry() *OrderEntry {
	return &OrderEntry{state: StateNoTransport, tariffs: []models.Tariff{}}
}

func (e *OrderEntry) SelectTransport(t domain.Transport) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSubmitting {
		return
	}
	e.transport = t
	e.state = StateTransportSelected
	e.lastErr = ""
}

// LoadTariffs fetches the public tariffs, substituting FallbackTariffs on any
// failure, and seeds the store's tariff mirror with the result.
func (e *OrderEntry) LoadTariffs(ctx context.Context, src PublicTariffSource, store *Store) []models.Tariff {
	e.mu.Lock()
	e.state = StateTariffsLoading
	e.mu.Unlock()

	list, err := src.GetTariffsPublic(ctx)
	fallback := false
	if err != nil {
		logger.Default().Warning("public tariffs unavailable, using fallback", logger.Error(err))
		list = FallbackTariffs()
		fallback = true
	}
	if store != nil {
		store.SetTariffs(list)
	}

	e.mu.Lock()
	e.tariffs = append([]models.Tariff{}, list...)
	e.usingFallback = fallback
	e.state = StateReady
	e.mu.Unlock()
	return list
}

// ValidateOrderForm checks the form in a fixed order and returns the first
// failure only: vehicle code, phone, tariff selection, tariff id.
func ValidateOrderForm(form OrderForm, tariffs []models.Tariff) (models.Tariff, error) {
	if strings.TrimSpace(form.VehicleCode) == "" {
		return models.Tariff{}, domain.ValidationError{Field: "vehicle_code", Msg: msgVehicleCodeRequired}
	}
	if strings.TrimSpace(form.Phone) == "" {
		return models.Tariff{}, domain.ValidationError{Field: "phone", Msg: msgPhoneRequired}
	}

	selected := strings.TrimSpace(form.TariffID)
	var option models.Tariff
	found := false
	if selected != "" {
		for _, t := range tariffs {
			if string(t.ID) == selected {
				option, found = t, true
				break
			}
		}
	}
	if !found {
		return models.Tariff{}, domain.ValidationError{Field: "tariff_id", Msg: msgTariffRequired}
	}
	if _, ok := option.ID.Int64(); !ok {
		return models.Tariff{}, domain.ValidationError{Field: "tariff_id", Msg: msgInvalidTariffID}
	}
	return option, nil
}

// Submit validates the form, sets and submits the pending order, and returns
// the navigation state for the payment screen. Validation failures never
// reach the backend.
func (e *OrderEntry) Submit(ctx context.Context, store *Store, form OrderForm) (PaymentNav, error) {
	if t, ok := domain.ParseTransport(form.Transport); ok {
		e.SelectTransport(t)
	}

	// Check and claim the submitting state under one lock.
	e.mu.Lock()
	if e.state == StateSubmitting {
		e.mu.Unlock()
		return PaymentNav{}, domain.ConflictError{Msg: "Pesanan sedang diproses."}
	}
	option, err := ValidateOrderForm(form, e.tariffs)
	if err != nil {
		e.lastErr = err.Error()
		e.mu.Unlock()
		return PaymentNav{}, err
	}
	prev := e.state
	e.state = StateSubmitting
	e.lastErr = ""
	e.mu.Unlock()

	store.SetOrder(form.VehicleCode, option, form.Phone)
	confirmed, err := store.SubmitOrder(ctx)
	if err != nil {
		e.mu.Lock()
		e.state = prev
		e.lastErr = ErrorMessage(OpCreateOrder, err)
		e.mu.Unlock()
		return PaymentNav{}, err
	}

	e.mu.Lock()
	e.state = StateNavigated
	e.mu.Unlock()

	return PaymentNav{OrderID: string(confirmed.ID), OrderNumber: confirmed.OrderNumber}, nil
}

func (e *OrderEntry) View() EntryView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EntryView{
		State:         e.state,
		Transport:     e.transport,
		Tariffs:       append([]models.Tariff{}, e.tariffs...),
		UsingFallback: e.usingFallback,
		Error:         e.lastErr,
	}
}

// Tariffs returns the currently loaded options.
func (e *OrderEntry) Tariffs() []models.Tariff {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Tariff{}, e.tariffs...)
}
