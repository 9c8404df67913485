package handlers

import (
	"net/http"

	"becak/internal/http/middleware"
	"becak/internal/services"
	"becak/internal/session"
	"becak/internal/utils"

	"github.com/gin-gonic/gin"
)

type acceptRequest struct {
	DriverID string `json:"driver_id"`
}

func ordersPayload(s *session.Session) gin.H {
	return gin.H{
		"orders":  s.Store.Orders(),
		"loading": s.Store.Loading(),
		"error":   s.Store.Error(),
	}
}

// GET /api/orders
// A failed fetch still answers with the previous list plus the error text.
func (h *Handler) ListOrders(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	if err := s.Store.FetchOrders(c.Request.Context()); err != nil {
		utils.LogFailure(middleware.GetRequestID(c), "order", "fetch", err)
	}
	c.JSON(http.StatusOK, ordersPayload(s))
}

// GET /api/driver/orders
func (h *Handler) ListDriverOrders(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	if err := s.Store.FetchDriverOrders(c.Request.Context()); err != nil {
		utils.LogFailure(middleware.GetRequestID(c), "order", "fetch_driver", err)
	}
	c.JSON(http.StatusOK, ordersPayload(s))
}

// POST /api/orders/:id/accept
func (h *Handler) AcceptOrder(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	var req acceptRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id := c.Param("id")
	if err := s.Store.AcceptOrder(c.Request.Context(), id, req.DriverID); err != nil {
		RespondOpError(c, services.OpAcceptOrder, err)
		return
	}
	h.respondOrder(c, s, id)
}

// POST /api/orders/:id/complete
func (h *Handler) CompleteOrder(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := s.Store.CompleteOrder(c.Request.Context(), id); err != nil {
		RespondOpError(c, services.OpCompleteOrder, err)
		return
	}
	h.respondOrder(c, s, id)
}

// POST /api/orders/:id/cancel
func (h *Handler) CancelOrder(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := s.Store.CancelOrder(c.Request.Context(), id); err != nil {
		RespondOpError(c, services.OpCancelOrder, err)
		return
	}
	h.respondOrder(c, s, id)
}

func (h *Handler) respondOrder(c *gin.Context, s *session.Session, id string) {
	resp := gin.H{"message": "status pesanan diperbarui"}
	if o, ok := s.Store.FindOrder(id); ok {
		resp["order"] = o
	}
	c.JSON(http.StatusOK, resp)
}
