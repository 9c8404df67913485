package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"becak/internal/domain"
	"becak/internal/domain/models"
	"becak/internal/logger"
)

// OrdersAPI is the slice of the backend's order endpoints the store needs.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)
	UpdateOrder(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
}

// DriverAPI is the slice of the backend's driver endpoints the store needs.
type DriverAPI interface {
	AcceptOrder(ctx context.Context, orderID, driverID string) (models.Order, error)
	CompleteOrder(ctx context.Context, orderID string) (models.Order, error)
	GetDriverOrders(ctx context.Context) ([]models.Order, error)
}

// Store is one session's view of orders and tariffs. It mirrors the backend
// and is shared by every screen of that session.
//
// The mutex is never held across a backend call, so two overlapping calls
// may both complete; the later one wins.
type Store struct {
	orders  OrdersAPI
	drivers DriverAPI
	now     func() time.Time

	mu       sync.Mutex
	pending  *models.Order
	list     []models.Order
	tariffs  []models.Tariff
	inflight int
	lastErr  string
}

func NewStore(orders OrdersAPI, drivers DriverAPI) *Store {
	return &Store{
		orders:  orders,
		drivers: drivers,
		now:     time.Now,
		list:    []models.Order{},
		tariffs: []models.Tariff{},
	}
}

// SetOrder builds the pending order locally. It does no I/O.
func (s *Store) SetOrder(vehicleCode string, option models.Tariff, phone string) models.Order {
	now := s.now()
	o := models.Order{
		ID:             domain.ID("LOCAL-" + strconv.FormatInt(now.UnixMilli(), 10)),
		VehicleCode:    strings.TrimSpace(vehicleCode),
		DistanceOption: option,
		Timestamp:      now,
		Status:         domain.StatusPending,
		Phone:          strings.TrimSpace(phone),
		Destination:    option.Destinations,
		TotalAmount:    option.Price,
	}

	s.mu.Lock()
	s.pending = &o
	s.mu.Unlock()
	return o
}

// SubmitOrder sends the pending order to the backend. On success the
// confirmed order (server id) is appended and the pending order cleared; on
// failure nothing but Error() changes.
func (s *Store) SubmitOrder(ctx context.Context) (models.Order, error) {
	s.begin()

	s.mu.Lock()
	p := s.pending
	s.mu.Unlock()

	if p == nil {
		err := domain.ValidationError{Field: "order", Msg: "Belum ada pesanan untuk dikirim."}
		s.end(OpCreateOrder, err)
		return models.Order{}, err
	}
	tariffID, ok := p.DistanceOption.ID.Int64()
	if !ok {
		err := domain.ValidationError{Field: "tariff_id", Msg: msgInvalidTariffID}
		s.end(OpCreateOrder, err)
		return models.Order{}, err
	}

	created, err := s.orders.CreateOrder(ctx, models.CreateOrderRequest{
		VehicleCode:    p.VehicleCode,
		TariffID:       tariffID,
		Phone:          p.Phone,
		CustomerName:   p.CustomerName,
		PickupLocation: p.PickupLocation,
		Destination:    p.Destination,
		TotalAmount:    p.Amount(),
	})
	if err != nil {
		s.end(OpCreateOrder, err)
		return models.Order{}, err
	}

	confirmed := *p
	if created.ID != "" {
		confirmed.ID = created.ID
	}
	if created.OrderNumber != "" {
		confirmed.OrderNumber = created.OrderNumber
	}
	if created.Status != "" {
		confirmed.Status = created.Status
	}

	s.mu.Lock()
	s.list = append(s.list, confirmed)
	if s.pending == p {
		s.pending = nil
	}
	s.mu.Unlock()

	s.end(OpCreateOrder, nil)
	return confirmed, nil
}

func (s *Store) AcceptOrder(ctx context.Context, orderID, driverID string) error {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		err := domain.ValidationError{Field: "driver_id", Msg: "ID pengemudi wajib diisi."}
		s.setError(OpAcceptOrder, err)
		return err
	}
	return s.transition(ctx, OpAcceptOrder, orderID, domain.StatusAccepted, driverID, func(ctx context.Context) error {
		_, err := s.drivers.AcceptOrder(ctx, orderID, driverID)
		return err
	})
}

func (s *Store) CompleteOrder(ctx context.Context, orderID string) error {
	return s.transition(ctx, OpCompleteOrder, orderID, domain.StatusCompleted, "", func(ctx context.Context) error {
		_, err := s.drivers.CompleteOrder(ctx, orderID)
		return err
	})
}

func (s *Store) CancelOrder(ctx context.Context, orderID string) error {
	return s.transition(ctx, OpCancelOrder, orderID, domain.StatusCancelled, "", func(ctx context.Context) error {
		_, err := s.orders.UpdateOrder(ctx, orderID, models.OrderUpdate{Status: domain.StatusCancelled})
		return err
	})
}

// transition applies a status change locally only after the backend call
// succeeded. When the order is missing locally the list is re-fetched.
func (s *Store) transition(ctx context.Context, op Operation, orderID string, target domain.OrderStatus, driverID string, call func(context.Context) error) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		err := domain.ValidationError{Field: "order_id", Msg: "ID pesanan tidak valid."}
		s.setError(op, err)
		return err
	}

	s.mu.Lock()
	if i := s.indexOf(orderID); i >= 0 && !s.list[i].Status.CanMoveTo(target) {
		current := s.list[i].Status
		s.mu.Unlock()
		err := domain.ConflictError{
			Resource: "pesanan " + orderID,
			Msg:      fmt.Sprintf("status %s tidak dapat diubah menjadi %s", current, target),
		}
		s.setError(op, err)
		return err
	}
	s.mu.Unlock()

	s.begin()
	if err := call(ctx); err != nil {
		s.end(op, err)
		return err
	}

	s.mu.Lock()
	i := s.indexOf(orderID)
	if i >= 0 {
		s.list[i].Status = target
		if driverID != "" {
			s.list[i].DriverID = domain.ID(driverID)
		}
	}
	s.mu.Unlock()

	if i < 0 {
		if list, err := s.orders.GetOrders(ctx); err == nil {
			s.replace(list)
		} else {
			logger.Default().Warning("order reconcile failed",
				logger.String("action", string(op)),
				logger.String("order_id", orderID),
				logger.Error(err),
			)
		}
	}

	s.end(op, nil)
	return nil
}

// FetchOrders replaces the list with the backend's; a failure keeps the old list.
func (s *Store) FetchOrders(ctx context.Context) error {
	s.begin()
	list, err := s.orders.GetOrders(ctx)
	if err != nil {
		s.end(OpFetchOrders, err)
		return err
	}
	s.replace(list)
	s.end(OpFetchOrders, nil)
	return nil
}

func (s *Store) FetchDriverOrders(ctx context.Context) error {
	s.begin()
	list, err := s.drivers.GetDriverOrders(ctx)
	if err != nil {
		s.end(OpFetchDriverOrders, err)
		return err
	}
	s.replace(list)
	s.end(OpFetchDriverOrders, nil)
	return nil
}

// SetTariffs replaces the tariff mirror.
func (s *Store) SetTariffs(list []models.Tariff) {
	cp := append([]models.Tariff{}, list...)
	s.mu.Lock()
	s.tariffs = cp
	s.mu.Unlock()
}

func (s *Store) AddTariff(t models.Tariff) {
	s.mu.Lock()
	s.tariffs = append(s.tariffs, t)
	s.mu.Unlock()
}

// UpdateTariff replaces the mirrored tariff with the same id and reports
// whether one was found.
func (s *Store) UpdateTariff(t models.Tariff) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tariffs {
		if s.tariffs[i].ID == t.ID {
			s.tariffs[i] = t
			return true
		}
	}
	return false
}

func (s *Store) DeleteTariff(id domain.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tariffs {
		if s.tariffs[i].ID == id {
			s.tariffs = append(s.tariffs[:i], s.tariffs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Pending() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return models.Order{}, false
	}
	return *s.pending, true
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order{}, s.list...)
}

func (s *Store) FindOrder(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(strings.TrimSpace(id)); i >= 0 {
		return s.list[i], true
	}
	return models.Order{}, false
}

func (s *Store) Tariffs() []models.Tariff {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Tariff{}, s.tariffs...)
}

// Loading reports whether any backend call of this store is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Error is the message of the last failed operation, "" when it succeeded.
func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) end(op Operation, err error) {
	s.mu.Lock()
	if s.inflight > 0 {
		s.inflight--
	}
	if err != nil {
		s.lastErr = ErrorMessage(op, err)
	}
	s.mu.Unlock()
}

func (s *Store) setError(op Operation, err error) {
	s.mu.Lock()
	s.lastErr = ErrorMessage(op, err)
	s.mu.Unlock()
}

func (s *Store) replace(list []models.Order) {
	cp := append([]models.Order{}, list...)
	s.mu.Lock()
	s.list = cp
	s.mu.Unlock()
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.list {
		if string(s.list[i].ID) == id {
			return i
		}
	}
	return -1
}
