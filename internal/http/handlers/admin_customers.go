package handlers

import (
	"net/http"

	"becak/internal/domain/models"
	"becak/internal/http/middleware"
	"becak/internal/services"
	"becak/internal/session"
	"becak/internal/utils"

	"github.com/gin-gonic/gin"
)

// roster refreshes the session's orders and derives the customer list. A
// failed refresh falls back to the orders already held.
func (h *Handler) roster(c *gin.Context, s *session.Session) []models.Customer {
	if err := s.Store.FetchOrders(c.Request.Context()); err != nil {
		utils.LogFailure(middleware.GetRequestID(c), "customer", "fetch_orders", err)
	}
	return h.Customers.Roster(s.Store.Orders())
}

// GET /api/admin/customers?q=&status=
func (h *Handler) ListCustomers(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	all := h.roster(c, s)
	items := h.Customers.Filter(all, services.CustomerQuery{
		Search: c.Query("q"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(all),
		"error": s.Store.Error(),
	})
}

// GET /api/admin/customers/:id
func (h *Handler) GetCustomer(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	cust, err := h.Customers.Find(h.roster(c, s), c.Param("id"))
	if err != nil {
		RespondOpError(c, services.OpFindCustomer, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}
