package services

import (
	"context"
	"errors"
	"sync"

	"becak/internal/apiclient"
	"becak/internal/domain"
	"becak/internal/domain/models"
)

var errBackendDown = &apiclient.HTTPError{Op: "test", Code: apiclient.CodeNetwork, Err: errors.New("connection refused")}

// fakeBackend records calls and returns canned results.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	createResp models.Order
	createErr  error
	lastCreate models.CreateOrderRequest

	// When set, CreateOrder signals createStarted and waits on createGate.
	createStarted chan struct{}
	createGate    chan struct{}

	orders    []models.Order
	ordersErr error

	acceptErr   error
	completeErr error
	updateErr   error
	lastUpdate  models.OrderUpdate
	lastUpdID   string

	tariffs     []models.Tariff
	tariffsErr  error
	lastFilter  domain.TariffFilter
	toggleResp  models.ToggleResult
	toggleErr   error
	createTResp models.Tariff
	createTErr  error
	deleteErr   error
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeBackend) called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeBackend) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	f.record("CreateOrder")
	if f.createStarted != nil {
		f.createStarted <- struct{}{}
	}
	if f.createGate != nil {
		<-f.createGate
	}
	f.lastCreate = req
	return f.createResp, f.createErr
}

func (f *fakeBackend) UpdateOrder(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error) {
	f.record("UpdateOrder")
	f.mu.Lock()
	f.lastUpdID, f.lastUpdate = id, upd
	f.mu.Unlock()
	return models.Order{}, f.updateErr
}

func (f *fakeBackend) GetOrders(ctx context.Context) ([]models.Order, error) {
	f.record("GetOrders")
	return f.orders, f.ordersErr
}

func (f *fakeBackend) AcceptOrder(ctx context.Context, orderID, driverID string) (models.Order, error) {
	f.record("AcceptOrder")
	return models.Order{}, f.acceptErr
}

func (f *fakeBackend) CompleteOrder(ctx context.Context, orderID string) (models.Order, error) {
	f.record("CompleteOrder")
	return models.Order{}, f.completeErr
}

func (f *fakeBackend) GetDriverOrders(ctx context.Context) ([]models.Order, error) {
	f.record("GetDriverOrders")
	return f.orders, f.ordersErr
}

func (f *fakeBackend) GetTariffsPublic(ctx context.Context) ([]models.Tariff, error) {
	f.record("GetTariffsPublic")
	return f.tariffs, f.tariffsErr
}

func (f *fakeBackend) GetTariffs(ctx context.Context, filter domain.TariffFilter) ([]models.Tariff, error) {
	f.record("GetTariffs")
	f.lastFilter = filter
	return f.tariffs, f.tariffsErr
}

func (f *fakeBackend) CreateTariff(ctx context.Context, in models.TariffInput) (models.Tariff, error) {
	f.record("CreateTariff")
	return f.createTResp, f.createTErr
}

func (f *fakeBackend) UpdateTariff(ctx context.Context, id string, in models.TariffInput) (models.Tariff, error) {
	f.record("UpdateTariff")
	return models.Tariff{}, nil
}

func (f *fakeBackend) DeleteTariff(ctx context.Context, id string) error {
	f.record("DeleteTariff")
	return f.deleteErr
}

func (f *fakeBackend) ToggleTariffStatus(ctx context.Context, id string) (models.ToggleResult, error) {
	f.record("ToggleTariffStatus")
	return f.toggleResp, f.toggleErr
}
