package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"becak/internal/domain/models"
)

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	const op = "ordersAPI.createOrder"
	raw, err := c.do(ctx, op, http.MethodPost, "/orders", nil, req)
	if err != nil {
		return models.Order{}, err
	}
	var out models.Order
	if err := decodeInto(op, raw, &out, "order"); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, upd models.OrderUpdate) (models.Order, error) {
	const op = "ordersAPI.updateOrder"
	raw, err := c.do(ctx, op, http.MethodPut, "/orders/"+url.PathEscape(id), nil, upd)
	if err != nil {
		return models.Order{}, err
	}
	var out models.Order
	if err := decodeInto(op, raw, &out, "order"); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]models.Order, error) {
	const op = "ordersAPI.getOrders"
	raw, err := c.do(ctx, op, http.MethodGet, "/orders", nil, nil)
	if err != nil {
		return nil, err
	}
	out := []models.Order{}
	if err := decodeInto(op, raw, &out, "orders"); err != nil {
		return nil, err
	}
	return out, nil
}
