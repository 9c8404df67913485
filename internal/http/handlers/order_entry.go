package handlers

import (
	"net/http"
	"net/url"

	"becak/internal/domain"
	"becak/internal/http/middleware"
	"becak/internal/services"
	"becak/internal/utils"

	"github.com/gin-gonic/gin"
)

type transportRequest struct {
	Transport string `json:"transport"`
}

// GET /api/order
func (h *Handler) GetOrderScreen(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	resp := gin.H{"screen": s.Entry.View()}
	if p, ok := s.Store.Pending(); ok {
		resp["pending"] = p
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/order/transport
func (h *Handler) SelectTransport(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	var req transportRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	t, ok := domain.ParseTransport(req.Transport)
	if !ok {
		RespondOpError(c, services.OpLoadTariffs, domain.ValidationError{Field: "transport", Msg: "Jenis transportasi tidak dikenal."})
		return
	}

	s.Entry.SelectTransport(t)
	s.Entry.LoadTariffs(c.Request.Context(), h.Backend, s.Store)
	c.JSON(http.StatusOK, gin.H{"screen": s.Entry.View()})
}

// GET /api/order/tariffs
func (h *Handler) GetOrderTariffs(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	list := s.Entry.LoadTariffs(c.Request.Context(), h.Backend, s.Store)
	view := s.Entry.View()
	c.JSON(http.StatusOK, gin.H{
		"tariffs":        list,
		"using_fallback": view.UsingFallback,
		"state":          view.State,
	})
}

// POST /api/order/submit
func (h *Handler) SubmitOrder(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	var form services.OrderForm
	if !BindJSONOrError(c, &form) {
		return
	}

	if len(s.Entry.Tariffs()) == 0 {
		s.Entry.LoadTariffs(c.Request.Context(), h.Backend, s.Store)
	}

	nav, err := s.Entry.Submit(c.Request.Context(), s.Store, form)
	if err != nil {
		RespondOpError(c, services.OpCreateOrder, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "order", "submit", "order_id="+nav.OrderID)
	q := url.Values{}
	q.Set("orderId", nav.OrderID)
	q.Set("orderNumber", nav.OrderNumber)
	c.JSON(http.StatusCreated, gin.H{
		"orderId":     nav.OrderID,
		"orderNumber": nav.OrderNumber,
		"next":        "/api/payment?" + q.Encode(),
	})
}
