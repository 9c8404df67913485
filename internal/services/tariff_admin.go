package services

import (
	"context"
	"strings"
	"sync"

	"becak/internal/domain"
	"becak/internal/domain/models"
)

// TariffsAPI is the backend's tariff administration surface.
type TariffsAPI interface {
	GetTariffs(ctx context.Context, filter domain.TariffFilter) ([]models.Tariff, error)
	CreateTariff(ctx context.Context, in models.TariffInput) (models.Tariff, error)
	UpdateTariff(ctx context.Context, id string, in models.TariffInput) (models.Tariff, error)
	DeleteTariff(ctx context.Context, id string) error
	ToggleTariffStatus(ctx context.Context, id string) (models.ToggleResult, error)
}

// TariffAdmin is the tariff settings screen of one session. Every mutation
// goes to the backend first; local state changes only after it succeeded.
type TariffAdmin struct {
	api   TariffsAPI
	store *Store

	mu     sync.Mutex
	filter domain.TariffFilter
	items  []models.Tariff
}

type TariffAdminView struct {
	Filter domain.TariffFilter `json:"filter"`
	Items  []models.Tariff     `json:"items"`
}

func NewTariffAdmin(api TariffsAPI, store *Store) *TariffAdmin {
	return &TariffAdmin{api: api, store: store, filter: domain.FilterAll, items: []models.Tariff{}}
}

// List reloads the screen for filter; the filter is sent to the backend on
// every call.
func (a *TariffAdmin) List(ctx context.Context, filter domain.TariffFilter) ([]models.Tariff, error) {
	filter = domain.ParseTariffFilter(string(filter))
	list, err := a.api.GetTariffs(ctx, filter)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.filter = filter
	a.items = append([]models.Tariff{}, list...)
	a.mu.Unlock()
	return list, nil
}

func (a *TariffAdmin) Create(ctx context.Context, in models.TariffInput) (models.Tariff, error) {
	if err := in.Validate(); err != nil {
		return models.Tariff{}, err
	}
	if in.IsActive == nil {
		active := true
		in.IsActive = &active
	}
	created, err := a.api.CreateTariff(ctx, in)
	if err != nil {
		return models.Tariff{}, err
	}
	if created.ID == "" {
		return models.Tariff{}, domain.InternalError{Msg: "Server tidak mengembalikan ID tarif."}
	}
	fillFromInput(&created, in)

	a.mu.Lock()
	a.items = append(a.items, created)
	a.mu.Unlock()
	a.store.AddTariff(created)
	return created, nil
}

func (a *TariffAdmin) Update(ctx context.Context, id string, in models.TariffInput) (models.Tariff, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Tariff{}, domain.ValidationError{Field: "id", Msg: "ID tarif tidak valid."}
	}
	if err := in.Validate(); err != nil {
		return models.Tariff{}, err
	}

	updated, err := a.api.UpdateTariff(ctx, id, in)
	if err != nil {
		return models.Tariff{}, err
	}
	if updated.ID == "" {
		updated.ID = domain.ID(id)
		if current, ok := a.find(updated.ID); ok {
			updated.IsActive = current.IsActive
		}
	}
	fillFromInput(&updated, in)

	a.replace(updated)
	a.store.UpdateTariff(updated)
	return updated, nil
}

func (a *TariffAdmin) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "ID tarif tidak valid."}
	}
	if err := a.api.DeleteTariff(ctx, id); err != nil {
		return err
	}

	a.mu.Lock()
	for i := range a.items {
		if string(a.items[i].ID) == id {
			a.items = append(a.items[:i], a.items[i+1:]...)
			break
		}
	}
	a.mu.Unlock()
	a.store.DeleteTariff(domain.ID(id))
	return nil
}

// Toggle flips is_active of one tariff after the backend accepted it.
func (a *TariffAdmin) Toggle(ctx context.Context, id string) (models.Tariff, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Tariff{}, domain.ValidationError{Field: "id", Msg: "ID tarif tidak valid."}
	}
	current, known := a.find(domain.ID(id))

	resp, err := a.api.ToggleTariffStatus(ctx, id)
	if err != nil {
		return models.Tariff{}, err
	}

	var toggled models.Tariff
	switch {
	case resp.Tariff.ID != "" && (resp.Tariff.Name != "" || !known):
		toggled = resp.Tariff
	case known:
		toggled = current
	default:
		return models.Tariff{}, domain.NotFoundError{Resource: "tarif", ID: id}
	}
	switch {
	case resp.IsActive != nil:
		toggled.IsActive = *resp.IsActive
	case known:
		toggled.IsActive = !current.IsActive
	}

	a.replace(toggled)
	a.store.UpdateTariff(toggled)
	return toggled, nil
}

func (a *TariffAdmin) View() TariffAdminView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return TariffAdminView{Filter: a.filter, Items: append([]models.Tariff{}, a.items...)}
}

func (a *TariffAdmin) find(id domain.ID) (models.Tariff, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, t := range a.items {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tariff{}, false
}

func (a *TariffAdmin) replace(t models.Tariff) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.items {
		if a.items[i].ID == t.ID {
			a.items[i] = t
			return
		}
	}
	a.items = append(a.items, t)
}

// fillFromInput completes a sparse backend echo with the submitted values.
func fillFromInput(t *models.Tariff, in models.TariffInput) {
	if t.Name == "" {
		t.Name = strings.TrimSpace(in.Name)
		t.Price = models.Amount(in.Price)
		t.Destinations = in.Destinations
		t.MinDistance = models.Km(in.MinDistance)
		t.MaxDistance = models.Km(in.MaxDistance)
		if in.IsActive != nil {
			t.IsActive = *in.IsActive
		}
	}
}
