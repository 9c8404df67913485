package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"becak/internal/domain/models"
)

func (c *Client) AcceptOrder(ctx context.Context, orderID, driverID string) (models.Order, error) {
	const op = "driverAPI.acceptOrder"
	body := map[string]string{"driver_id": driverID}
	raw, err := c.do(ctx, op, http.MethodPost, "/driver/orders/"+url.PathEscape(orderID)+"/accept", nil, body)
	if err != nil {
		return models.Order{}, err
	}
	var out models.Order
	if err := decodeInto(op, raw, &out, "order"); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

func (c *Client) CompleteOrder(ctx context.Context, orderID string) (models.Order, error) {
	const op = "driverAPI.completeOrder"
	raw, err := c.do(ctx, op, http.MethodPost, "/driver/orders/"+url.PathEscape(orderID)+"/complete", nil, nil)
	if err != nil {
		return models.Order{}, err
	}
	var out models.Order
	if err := decodeInto(op, raw, &out, "order"); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

func (c *Client) GetDriverOrders(ctx context.Context) ([]models.Order, error) {
	const op = "driverAPI.getDriverOrders"
	raw, err := c.do(ctx, op, http.MethodGet, "/driver/orders", nil, nil)
	if err != nil {
		return nil, err
	}
	out := []models.Order{}
	if err := decodeInto(op, raw, &out, "orders"); err != nil {
		return nil, err
	}
	return out, nil
}
