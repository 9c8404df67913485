package services

import (
	"sort"
	"strings"
	"time"

	"becak/internal/domain"
	"becak/internal/domain/models"
	"becak/internal/utils"
)

const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"

	missingPhone   = "-"
	activeWindow   = 30 * 24 * time.Hour
	demoCustomerID = "DEMO-"
)

// CustomerService derives the admin customer roster from the order list.
type CustomerService struct {
	IncludeDemo bool
	Now         func() time.Time
}

type CustomerQuery struct {
	Search string
	Status string
}

// Roster groups orders by the digits of the phone number and appends the demonstration
// customers. Nothing is stored; call it again whenever orders change.
func (s CustomerService) Roster(orders []models.Order) []models.Customer {
	now := s.now()
	byKey := map[string]*models.Customer{}
	ratings := map[string][]float64{}
	keys := []string{}

	for _, o := range orders {
		phone := strings.TrimSpace(o.Phone)
		if phone == "" {
			phone = missingPhone
		}
		key := phoneKey(phone)
		c, ok := byKey[key]
		if !ok {
			c = &models.Customer{
				ID:     customerID(phone),
				Name:   customerName(o, phone),
				Phone:  phone,
				Orders: []models.Order{},
			}
			byKey[key] = c
			keys = append(keys, key)
		}
		if c.Name == "" || strings.HasPrefix(c.Name, "Pelanggan ") {
			if name := utils.NormalizeSpace(o.CustomerName); name != "" {
				c.Name = name
			}
		}
		c.TotalOrders++
		c.TotalSpent += o.Amount()
		if o.Timestamp.After(c.LastOrderAt) {
			c.LastOrderAt = o.Timestamp
		}
		if o.Status == domain.StatusCompleted && o.Rating > 0 {
			ratings[key] = append(ratings[key], o.Rating)
		}
		c.Orders = append(c.Orders, o)
	}

	out := make([]models.Customer, 0, len(keys)+3)
	for _, key := range keys {
		c := byKey[key]
		c.AverageRating = average(ratings[key])
		c.Status = statusAt(c.LastOrderAt, now)
		sort.SliceStable(c.Orders, func(i, j int) bool {
			return c.Orders[i].Timestamp.After(c.Orders[j].Timestamp)
		})
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastOrderAt.After(out[j].LastOrderAt)
	})

	if s.IncludeDemo {
		out = append(out, demoCustomers(now)...)
	}
	return out
}

// Filter applies the screen's search box and status selector.
func (s CustomerService) Filter(list []models.Customer, q CustomerQuery) []models.Customer {
	search := strings.TrimSpace(q.Search)
	status := strings.ToLower(strings.TrimSpace(q.Status))
	if status == "all" {
		status = ""
	}

	out := []models.Customer{}
	for _, c := range list {
		if search != "" && !utils.ContainsFold(c.Name, search) && !utils.ContainsFold(c.Phone, search) {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Find returns one roster entry by id.
func (s CustomerService) Find(list []models.Customer, id string) (models.Customer, error) {
	id = strings.TrimSpace(id)
	for _, c := range list {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, domain.NotFoundError{Resource: "pelanggan", ID: id}
}

func (s CustomerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// phoneKey identifies a customer; phones without digits share one entry.
func phoneKey(phone string) string {
	if digits := utils.DigitsOnly(phone); digits != "" {
		return digits
	}
	return missingPhone
}

func customerID(phone string) string {
	digits := utils.DigitsOnly(phone)
	if digits == "" {
		return "CUST-UNKNOWN"
	}
	return "CUST-" + digits
}

func customerName(o models.Order, phone string) string {
	if name := utils.NormalizeSpace(o.CustomerName); name != "" {
		return name
	}
	digits := utils.DigitsOnly(phone)
	if digits == "" {
		return "Pelanggan"
	}
	return "Pelanggan " + utils.LastN(digits, 4)
}

func statusAt(last, now time.Time) string {
	if !last.IsZero() && now.Sub(last) <= activeWindow {
		return CustomerActive
	}
	return CustomerInactive
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return float64(int(sum/float64(len(xs))*10+0.5)) / 10
}

// demoCustomers keeps the roster from ever being empty.
func demoCustomers(now time.Time) []models.Customer {
	day := 24 * time.Hour
	return []models.Customer{
		{
			ID: demoCustomerID + "1", Name: "Budi Santoso", Phone: "081234567890",
			TotalOrders: 12, TotalSpent: 240000, AverageRating: 4.8,
			LastOrderAt: now.Add(-2 * day), Status: CustomerActive, IsDemo: true,
		},
		{
			ID: demoCustomerID + "2", Name: "Siti Rahayu", Phone: "082345678901",
			TotalOrders: 7, TotalSpent: 155000, AverageRating: 4.5,
			LastOrderAt: now.Add(-10 * day), Status: CustomerActive, IsDemo: true,
		},
		{
			ID: demoCustomerID + "3", Name: "Ahmad Wijaya", Phone: "083456789012",
			TotalOrders: 3, TotalSpent: 65000, AverageRating: 4.2,
			LastOrderAt: now.Add(-45 * day), Status: CustomerInactive, IsDemo: true,
		},
	}
}
