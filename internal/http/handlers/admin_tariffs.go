package handlers

import (
	"net/http"

	"becak/internal/domain"
	"becak/internal/domain/models"
	"becak/internal/http/middleware"
	"becak/internal/services"
	"becak/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/tariffs?status=all|active|inactive
func (h *Handler) ListTariffs(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	filter := domain.ParseTariffFilter(c.Query("status"))
	list, err := s.Tariffs.List(c.Request.Context(), filter)
	if err != nil {
		RespondOpError(c, services.OpListTariffs, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filter": filter, "items": list})
}

// POST /api/admin/tariffs
func (h *Handler) CreateTariff(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	var in models.TariffInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := s.Tariffs.Create(c.Request.Context(), in)
	if err != nil {
		RespondOpError(c, services.OpCreateTariff, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "tariff", "create", "id="+t.ID.String())
	c.JSON(http.StatusCreated, gin.H{"message": "Tarif berhasil ditambahkan.", "tariff": t})
}

// PUT /api/admin/tariffs/:id
func (h *Handler) UpdateTariff(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	var in models.TariffInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := s.Tariffs.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondOpError(c, services.OpUpdateTariff, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tarif berhasil diperbarui.", "tariff": t})
}

// DELETE /api/admin/tariffs/:id
func (h *Handler) DeleteTariff(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := s.Tariffs.Delete(c.Request.Context(), id); err != nil {
		RespondOpError(c, services.OpDeleteTariff, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "tariff", "delete", "id="+id)
	c.JSON(http.StatusOK, gin.H{"message": "Tarif berhasil dihapus."})
}

// PATCH /api/admin/tariffs/:id/toggle
func (h *Handler) ToggleTariff(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	t, err := s.Tariffs.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondOpError(c, services.OpToggleTariff, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status tarif diperbarui.", "tariff": t})
}
