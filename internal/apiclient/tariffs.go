package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"becak/internal/domain"
	"becak/internal/domain/models"
)

// GetTariffsPublic lists the tariffs offered on the order screen.
func (c *Client) GetTariffsPublic(ctx context.Context) ([]models.Tariff, error) {
	const op = "tariffsAPI.getTariffsPublic"
	raw, err := c.do(ctx, op, http.MethodGet, "/tariffs/public", nil, nil)
	if err != nil {
		return nil, err
	}
	out := []models.Tariff{}
	if err := decodeInto(op, raw, &out, "tariffs"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTariffs lists tariffs for the admin screen; filter is sent as ?status=.
func (c *Client) GetTariffs(ctx context.Context, filter domain.TariffFilter) ([]models.Tariff, error) {
	const op = "tariffsAPI.getTariffs"
	q := url.Values{}
	q.Set("status", string(domain.ParseTariffFilter(string(filter))))
	raw, err := c.do(ctx, op, http.MethodGet, "/tariffs", q, nil)
	if err != nil {
		return nil, err
	}
	out := []models.Tariff{}
	if err := decodeInto(op, raw, &out, "tariffs"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTariff(ctx context.Context, in models.TariffInput) (models.Tariff, error) {
	const op = "tariffsAPI.createTariff"
	raw, err := c.do(ctx, op, http.MethodPost, "/tariffs", nil, in)
	if err != nil {
		return models.Tariff{}, err
	}
	var out models.Tariff
	if err := decodeInto(op, raw, &out, "tariff"); err != nil {
		return models.Tariff{}, err
	}
	return out, nil
}

func (c *Client) UpdateTariff(ctx context.Context, id string, in models.TariffInput) (models.Tariff, error) {
	const op = "tariffsAPI.updateTariff"
	raw, err := c.do(ctx, op, http.MethodPut, "/tariffs/"+url.PathEscape(id), nil, in)
	if err != nil {
		return models.Tariff{}, err
	}
	var out models.Tariff
	if err := decodeInto(op, raw, &out, "tariff"); err != nil {
		return models.Tariff{}, err
	}
	return out, nil
}

func (c *Client) DeleteTariff(ctx context.Context, id string) error {
	const op = "tariffsAPI.deleteTariff"
	_, err := c.do(ctx, op, http.MethodDelete, "/tariffs/"+url.PathEscape(id), nil, nil)
	return err
}

// ToggleTariffStatus flips is_active on the backend. The echo may be empty,
// carry only the id, or the full tariff.
func (c *Client) ToggleTariffStatus(ctx context.Context, id string) (models.ToggleResult, error) {
	const op = "tariffsAPI.toggleTariffStatus"
	raw, err := c.do(ctx, op, http.MethodPatch, "/tariffs/"+url.PathEscape(id)+"/toggle", nil, nil)
	if err != nil {
		return models.ToggleResult{}, err
	}
	var (
		out   models.ToggleResult
		state struct {
			IsActive *bool `json:"is_active"`
		}
	)
	if err := decodeInto(op, raw, &out.Tariff, "tariff"); err != nil {
		return models.ToggleResult{}, err
	}
	if err := decodeInto(op, raw, &state, "tariff"); err != nil {
		return models.ToggleResult{}, err
	}
	out.IsActive = state.IsActive
	return out, nil
}
