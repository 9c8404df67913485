package handlers

import (
	"net/http"
	"strings"

	"becak/internal/domain/models"
	"becak/internal/http/middleware"
	"becak/internal/services"

	"github.com/gin-gonic/gin"
)

const orderEntryPath = "/api/order"

func (h *Handler) paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		Drivers:   h.Drivers,
		Delay:     h.PaymentDelay,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/payment?orderId=&orderNumber=
// Without an order to pay for, the caller is sent back to the order screen.
func (h *Handler) GetPayment(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	nav := services.PaymentNav{
		OrderID:     strings.TrimSpace(c.Query("orderId")),
		OrderNumber: strings.TrimSpace(c.Query("orderNumber")),
	}

	var (
		order models.Order
		found bool
	)
	if nav.OrderID != "" {
		order, found = s.Store.FindOrder(nav.OrderID)
	}
	if !found {
		order, found = s.Store.Pending()
	}
	if !found {
		if nav.OrderID == "" {
			if view := s.Payment.View(); view.Summary != nil {
				c.JSON(http.StatusOK, view)
				return
			}
		}
		c.Redirect(http.StatusSeeOther, orderEntryPath)
		return
	}

	summary := h.paymentService(c).Summary(c.Request.Context(), order, nav)
	c.JSON(http.StatusOK, s.Payment.Open(summary))
}

// POST /api/payment/confirm
func (h *Handler) ConfirmPayment(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	summary, err := s.Payment.Begin()
	if err != nil {
		RespondOpError(c, services.OpConfirmPayment, err)
		return
	}

	receipt, err := h.paymentService(c).Confirm(c.Request.Context(), summary)
	if err != nil {
		s.Payment.Finish(nil)
		RespondOpError(c, services.OpConfirmPayment, err)
		return
	}
	s.Payment.Finish(&receipt)

	c.JSON(http.StatusOK, gin.H{
		"state":      services.PaymentPaid,
		"receipt":    receipt,
		"share_text": services.ShareText(receipt),
	})
}

// GET /api/payment/receipt
func (h *Handler) GetReceipt(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	r, ok := s.Payment.Receipt()
	if !ok {
		respondError(c, http.StatusNotFound, "receipt_not_found", "Bukti pembayaran belum tersedia.", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"receipt":    r,
		"share_text": services.ShareText(r),
	})
}

// GET /api/payment/receipt.pdf
func (h *Handler) GetReceiptPDF(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	r, ok := s.Payment.Receipt()
	if !ok {
		respondError(c, http.StatusNotFound, "receipt_not_found", "Bukti pembayaran belum tersedia.", nil)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := docs.ReceiptPDF(r)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pdf_failed", "Gagal membuat PDF bukti pembayaran.", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
