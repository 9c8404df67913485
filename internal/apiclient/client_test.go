package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"becak/internal/domain"
	"becak/internal/domain/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", 5*time.Second)
}

func TestCreateOrderSendsBodyAndToken(t *testing.T) {
	var got models.CreateOrderRequest
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"order":{"id":17,"order_number":"ORD-17","status":"pending","created_at":"2026-10-15 09:30:00"}}}`))
	})

	ctx := WithToken(context.Background(), "abc")
	o, err := c.CreateOrder(ctx, models.CreateOrderRequest{VehicleCode: "BCK-001", TariffID: 2, Phone: "0812", TotalAmount: 20000})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if o.ID != "17" || o.OrderNumber != "ORD-17" || o.Timestamp.IsZero() {
		t.Fatalf("order = %+v", o)
	}
	if got.TariffID != 2 || got.VehicleCode != "BCK-001" {
		t.Fatalf("request body = %+v", got)
	}
	if auth != "Bearer abc" {
		t.Fatalf("authorization = %q", auth)
	}
}

func TestGetOrdersAcceptsBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1","total_amount":"15000.00","tariff":{"id":1,"name":"Dekat","price":10000}}]`))
	})
	list, err := c.GetOrders(context.Background())
	if err != nil {
		t.Fatalf("GetOrders error: %v", err)
	}
	if len(list) != 1 || list[0].Amount() != 15000 || list[0].DistanceOption.Name != "Dekat" {
		t.Fatalf("orders = %+v", list)
	}
	if list[0].Status != domain.StatusPending {
		t.Fatalf("status default = %q", list[0].Status)
	}
}

func TestGetTariffsSendsStatusFilter(t *testing.T) {
	var status string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		status = r.URL.Query().Get("status")
		_, _ = w.Write([]byte(`{"tariffs":[{"id":3,"name":"Jauh","price":"35000","min_distance":"5","max_distance":10,"is_active":false}]}`))
	})
	list, err := c.GetTariffs(context.Background(), domain.FilterInactive)
	if err != nil {
		t.Fatalf("GetTariffs error: %v", err)
	}
	if status != "inactive" {
		t.Fatalf("status query = %q", status)
	}
	if len(list) != 1 || list[0].Price != 35000 || list[0].MinDistance != 5 || list[0].DistanceLabel() != "5-10 km" {
		t.Fatalf("tariffs = %+v", list)
	}
}

func TestAcceptOrderPath(t *testing.T) {
	var path, driver string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		driver = body["driver_id"]
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})
	if _, err := c.AcceptOrder(context.Background(), "5", "7"); err != nil {
		t.Fatalf("AcceptOrder error: %v", err)
	}
	if path != "/api/driver/orders/5/accept" || driver != "7" {
		t.Fatalf("path=%q driver=%q", path, driver)
	}
}

func TestErrorResponsesCarryStatusAndMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"message":"sudah diambil"}}`))
	})
	_, err := c.CompleteOrder(context.Background(), "5")
	he, ok := AsHTTPError(err)
	if !ok {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	if he.Status != http.StatusConflict || he.Message != "sudah diambil" || he.Kind() != KindConflict {
		t.Fatalf("http error = %+v", he)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	_, err := c.GetTariffsPublic(context.Background())
	he, ok := AsHTTPError(err)
	if !ok || he.Kind() != KindNetwork || he.Code != CodeNetwork {
		t.Fatalf("err = %v, want network failure", err)
	}
}

func TestDeleteTariffMethod(t *testing.T) {
	var method string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	})
	if err := c.DeleteTariff(context.Background(), "3"); err != nil {
		t.Fatalf("DeleteTariff error: %v", err)
	}
	if method != http.MethodDelete {
		t.Fatalf("method = %q", method)
	}
}

func TestToggleTariffStatusReportsMissingState(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s", r.Method)
		}
		switch r.URL.Path {
		case "/api/tariffs/1/toggle":
			_, _ = w.Write([]byte(`{"id":1}`))
		case "/api/tariffs/2/toggle":
			_, _ = w.Write([]byte(`{"data":{"tariff":{"id":2,"name":"Sedang","is_active":false}}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	res, err := c.ToggleTariffStatus(context.Background(), "1")
	if err != nil {
		t.Fatalf("ToggleTariffStatus error: %v", err)
	}
	if res.Tariff.ID != "1" || res.IsActive != nil {
		t.Fatalf("result = %+v, want id 1 without state", res)
	}

	res, err = c.ToggleTariffStatus(context.Background(), "2")
	if err != nil {
		t.Fatalf("ToggleTariffStatus error: %v", err)
	}
	if res.IsActive == nil || *res.IsActive || res.Tariff.Name != "Sedang" {
		t.Fatalf("result = %+v, want explicit inactive state", res)
	}
}
