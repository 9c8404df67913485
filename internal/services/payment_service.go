package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"becak/internal/domain"
	"becak/internal/domain/models"
	"becak/internal/utils"
)

// DriverLookup resolves a vehicle code to its driver.
type DriverLookup interface {
	FindByVehicleCode(ctx context.Context, vehicleCode string) (models.Driver, error)
}

// PaymentService renders the payment screen. No real gateway is involved:
// confirmation is a fixed wait.
type PaymentService struct {
	Drivers   DriverLookup
	Delay     time.Duration
	RequestID string
	Now       func() time.Time
}

type PaymentSummary struct {
	OrderID       string    `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	VehicleCode   string    `json:"vehicle_code"`
	DriverName    string    `json:"driver_name"`
	Transport     string    `json:"transport,omitempty"`
	Phone         string    `json:"phone"`
	TariffName    string    `json:"tariff_name"`
	DistanceRange string    `json:"distance_range"`
	Destination   string    `json:"destination"`
	Amount        int64     `json:"amount"`
	AmountText    string    `json:"amount_text"`
	OrderedAt     time.Time `json:"ordered_at"`
	OrderedAtText string    `json:"ordered_at_text"`
	QRISPayload   string    `json:"qris_payload"`
}

type Receipt struct {
	PaymentSummary
	ReceiptNumber string    `json:"receipt_number"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paid_at"`
	PaidAtText    string    `json:"paid_at_text"`
}

// Summary builds the payment view of order. nav fills in the order number
// when the store copy predates the server response.
func (s PaymentService) Summary(ctx context.Context, order models.Order, nav PaymentNav) PaymentSummary {
	number := strings.TrimSpace(order.OrderNumber)
	if number == "" {
		number = strings.TrimSpace(nav.OrderNumber)
	}
	if number == "" {
		number = string(order.ID)
	}

	driverName, transport := "-", ""
	if s.Drivers != nil && order.VehicleCode != "" {
		if d, err := s.Drivers.FindByVehicleCode(ctx, order.VehicleCode); err == nil {
			driverName, transport = d.Name, string(d.Transport)
		} else {
			utils.LogEvent(s.RequestID, "payment", "driver_lookup", "vehicle_code="+order.VehicleCode+" err="+err.Error())
		}
	}

	amount := order.Amount()
	destination := order.Destination
	if destination == "" {
		destination = order.DistanceOption.Destinations
	}

	return PaymentSummary{
		OrderID:       string(order.ID),
		OrderNumber:   number,
		VehicleCode:   order.VehicleCode,
		DriverName:    driverName,
		Transport:     transport,
		Phone:         order.Phone,
		TariffName:    order.DistanceOption.Name,
		DistanceRange: order.DistanceOption.DistanceLabel(),
		Destination:   destination,
		Amount:        amount,
		AmountText:    utils.FormatRupiah(amount),
		OrderedAt:     order.Timestamp,
		OrderedAtText: utils.FormatDateTimeID(order.Timestamp),
		QRISPayload:   mockQRISPayload(number, amount),
	}
}

// Confirm waits the configured delay and returns the receipt. The wait stops
// early with ctx's error when the request goes away.
func (s PaymentService) Confirm(ctx context.Context, summary PaymentSummary) (Receipt, error) {
	delay := s.Delay
	if delay < 0 {
		delay = 0
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	paidAt := s.now()
	utils.LogEvent(s.RequestID, "payment", "confirm", "order="+summary.OrderNumber)
	return Receipt{
		PaymentSummary: summary,
		ReceiptNumber:  "RCPT-" + safeFilenamePart(summary.OrderNumber),
		Method:         "QRIS",
		PaidAt:         paidAt,
		PaidAtText:     utils.FormatDateTimeID(paidAt),
	}, nil
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ShareText is the receipt body used for native share or clipboard copy.
func ShareText(r Receipt) string {
	title := "Bukti Pembayaran Becak"
	if r.Transport == string(domain.TransportDelman) {
		title = "Bukti Pembayaran Delman"
	}
	lines := []string{
		title,
		"No. Struk   : " + r.ReceiptNumber,
		"No. Pesanan : " + r.OrderNumber,
		"Kendaraan   : " + safe(r.VehicleCode, "-") + " (" + safe(r.DriverName, "-") + ")",
		"Tujuan      : " + safe(r.Destination, "-"),
		"Jarak       : " + safe(r.DistanceRange, "-"),
		"Total       : " + r.AmountText,
		"Metode      : " + r.Method,
		"Dibayar     : " + r.PaidAtText,
	}
	return strings.Join(lines, "\n")
}

func mockQRISPayload(orderNumber string, amount int64) string {
	return fmt.Sprintf("QRIS-MOCK|BECAK|%s|%d", orderNumber, amount)
}

// PaymentState is where the payment screen is.
type PaymentState string

const (
	PaymentAwaiting   PaymentState = "awaiting"
	PaymentProcessing PaymentState = "processing"
	PaymentPaid       PaymentState = "paid"
)

// PaymentScreen holds one session's payment view between requests.
type PaymentScreen struct {
	mu      sync.Mutex
	state   PaymentState
	summary *PaymentSummary
	receipt *Receipt
}

type PaymentView struct {
	State   PaymentState    `json:"state"`
	Summary *PaymentSummary `json:"summary,omitempty"`
	Receipt *Receipt        `json:"receipt,omitempty"`
}

// Open shows summary, resetting the screen unless it already shows the same order.
func (p *PaymentScreen) Open(summary PaymentSummary) PaymentView {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.summary == nil || p.summary.OrderID != summary.OrderID {
		p.state = PaymentAwaiting
		p.receipt = nil
	}
	p.summary = &summary
	return p.viewLocked()
}

// Begin moves to processing and returns the summary to confirm.
func (p *PaymentScreen) Begin() (PaymentSummary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.summary == nil {
		return PaymentSummary{}, domain.NotFoundError{Resource: "pesanan"}
	}
	switch p.state {
	case PaymentProcessing:
		return PaymentSummary{}, domain.ConflictError{Msg: "Pembayaran sedang diproses."}
	case PaymentPaid:
		return PaymentSummary{}, domain.ConflictError{Msg: "Pesanan ini sudah dibayar."}
	}
	p.state = PaymentProcessing
	return *p.summary, nil
}

// Finish records the outcome of Begin. A nil receipt returns to awaiting.
func (p *PaymentScreen) Finish(r *Receipt) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r == nil {
		p.state = PaymentAwaiting
		return
	}
	p.state = PaymentPaid
	p.receipt = r
}

func (p *PaymentScreen) Receipt() (Receipt, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.receipt == nil {
		return Receipt{}, false
	}
	return *p.receipt, true
}

func (p *PaymentScreen) View() PaymentView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

func (p *PaymentScreen) viewLocked() PaymentView {
	v := PaymentView{State: p.state}
	if v.State == "" {
		v.State = PaymentAwaiting
	}
	if p.summary != nil {
		s := *p.summary
		v.Summary = &s
	}
	if p.receipt != nil {
		r := *p.receipt
		v.Receipt = &r
	}
	return v
}
