package models

import (
	"encoding/json"
	"testing"
	"time"

	"becak/internal/domain"
)

func TestOrderUnmarshalVariants(t *testing.T) {
	raw := `{"id":5,"vehicle_code":"DLM-001","tariff_id":3,"created_at":"2026-10-15 08:00:00","total_amount":"35000.00","rating":4.5}`
	var o Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if o.ID != "5" || o.DistanceOption.ID != "3" || o.Amount() != 35000 {
		t.Fatalf("order = %+v", o)
	}
	want := time.Date(2026, 10, 15, 8, 0, 0, 0, time.Local)
	if !o.Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", o.Timestamp, want)
	}
	if o.Status != domain.StatusPending || o.Rating != 4.5 {
		t.Fatalf("status/rating = %q/%v", o.Status, o.Rating)
	}
}

func TestOrderRoundTripKeepsTimestamp(t *testing.T) {
	in := Order{ID: "LOCAL-1", Status: domain.StatusAccepted, Timestamp: time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var out Order
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !out.Timestamp.Equal(in.Timestamp) || out.Status != domain.StatusAccepted {
		t.Fatalf("round trip = %+v", out)
	}
}

func TestTariffInputValidate(t *testing.T) {
	ok := TariffInput{Name: "Dekat", Price: 10000, MinDistance: 0, MaxDistance: 2}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	bad := []TariffInput{
		{Name: " ", Price: 1},
		{Name: "X", Price: -1},
		{Name: "X", MinDistance: -1},
		{Name: "X", MinDistance: 5, MaxDistance: 2},
	}
	for _, in := range bad {
		if err := in.Validate(); !domain.IsValidation(err) {
			t.Fatalf("input %+v accepted", in)
		}
	}
	if got := (Tariff{MinDistance: 2, MaxDistance: 5.5}).DistanceLabel(); got != "2-5.5 km" {
		t.Fatalf("DistanceLabel = %q", got)
	}
}
