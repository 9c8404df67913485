package services

import (
	"testing"
	"time"

	"becak/internal/domain"
	"becak/internal/domain/models"
)

func fixedNow() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }

func TestRosterGroupsByPhone(t *testing.T) {
	now := fixedNow()
	orders := []models.Order{
		{ID: "1", Phone: "0812-3456", TotalAmount: 10000, Timestamp: now.Add(-48 * time.Hour), Status: domain.StatusCompleted, Rating: 4},
		{ID: "2", Phone: "0812-3456", DistanceOption: models.Tariff{Price: 20000}, Timestamp: now.Add(-time.Hour), Status: domain.StatusCompleted, Rating: 5},
		{ID: "3", Phone: "0899", TotalAmount: 35000, Timestamp: now.Add(-60 * 24 * time.Hour), Status: domain.StatusPending},
	}
	svc := CustomerService{Now: func() time.Time { return now }}

	list := svc.Roster(orders)
	if len(list) != 2 {
		t.Fatalf("customers = %d, want 2", len(list))
	}
	c := list[0]
	if c.Phone != "0812-3456" || c.TotalOrders != 2 || c.TotalSpent != 30000 {
		t.Fatalf("first customer = %+v", c)
	}
	if c.ID != "CUST-08123456" || c.Name != "Pelanggan 3456" {
		t.Fatalf("id/name = %q/%q", c.ID, c.Name)
	}
	if c.AverageRating != 4.5 {
		t.Fatalf("average rating = %v, want 4.5", c.AverageRating)
	}
	if c.Status != CustomerActive || list[1].Status != CustomerInactive {
		t.Fatalf("statuses = %q/%q", c.Status, list[1].Status)
	}
	if c.Orders[0].ID != "2" {
		t.Fatalf("history not newest first: %+v", c.Orders)
	}
	if list[1].AverageRating != 0 {
		t.Fatalf("rating fabricated for unrated customer: %v", list[1].AverageRating)
	}
}

func TestRosterMergesPhoneFormats(t *testing.T) {
	now := fixedNow()
	orders := []models.Order{
		{ID: "1", Phone: "0812-3456", TotalAmount: 10000, Timestamp: now.Add(-2 * time.Hour)},
		{ID: "2", Phone: "08123456", TotalAmount: 15000, Timestamp: now.Add(-time.Hour)},
		{ID: "3", Phone: "", TotalAmount: 5000, Timestamp: now.Add(-3 * time.Hour)},
		{ID: "4", Phone: "tidak ada", TotalAmount: 5000, Timestamp: now.Add(-4 * time.Hour)},
	}
	svc := CustomerService{Now: func() time.Time { return now }}

	list := svc.Roster(orders)
	if len(list) != 2 {
		t.Fatalf("customers = %d, want 2: %+v", len(list), list)
	}
	c, err := svc.Find(list, "CUST-08123456")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if c.TotalOrders != 2 || c.TotalSpent != 25000 {
		t.Fatalf("merged customer = %+v", c)
	}
	seen := map[string]bool{}
	for _, c := range list {
		if seen[c.ID] {
			t.Fatalf("duplicate customer id %q", c.ID)
		}
		seen[c.ID] = true
	}
	unknown, err := svc.Find(list, "CUST-UNKNOWN")
	if err != nil || unknown.TotalOrders != 2 || unknown.Phone != missingPhone {
		t.Fatalf("unknown customer = %+v, err = %v", unknown, err)
	}
}

func TestRosterAppendsDemoCustomers(t *testing.T) {
	svc := CustomerService{IncludeDemo: true, Now: fixedNow}
	list := svc.Roster(nil)
	if len(list) != 3 {
		t.Fatalf("customers = %d, want 3 demo entries", len(list))
	}
	for _, c := range list {
		if !c.IsDemo {
			t.Fatalf("non-demo entry in empty roster: %+v", c)
		}
	}
	if list[2].Status != CustomerInactive {
		t.Fatalf("third demo customer should be inactive")
	}
}

func TestFilterAndFind(t *testing.T) {
	svc := CustomerService{IncludeDemo: true, Now: fixedNow}
	list := svc.Roster(nil)

	got := svc.Filter(list, CustomerQuery{Search: "siti"})
	if len(got) != 1 || got[0].Name != "Siti Rahayu" {
		t.Fatalf("search result = %+v", got)
	}
	if got := svc.Filter(list, CustomerQuery{Status: "inactive"}); len(got) != 1 {
		t.Fatalf("inactive filter = %d, want 1", len(got))
	}
	if got := svc.Filter(list, CustomerQuery{Status: "all"}); len(got) != 3 {
		t.Fatalf("all filter = %d, want 3", len(got))
	}

	if _, err := svc.Find(list, "DEMO-2"); err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if _, err := svc.Find(list, "nope"); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
