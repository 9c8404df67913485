package handlers

import (
	"context"
	"errors"
	"net/http"

	"becak/internal/apiclient"
	"becak/internal/domain"
	"becak/internal/http/middleware"
	"becak/internal/services"
	"becak/internal/utils"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
		"message":    message,
	})
}

// RespondOpError maps a failed operation to an HTTP response. The message
// always comes from services.ErrorMessage.
func RespondOpError(c *gin.Context, op services.Operation, err error) {
	status, code := classify(err)
	msg := services.ErrorMessage(op, err)

	var details any
	var ve domain.ValidationError
	if errors.As(err, &ve) && ve.Field != "" {
		details = gin.H{"field": ve.Field}
	}
	if status >= 500 || status == http.StatusBadGateway {
		utils.LogFailure(middleware.GetRequestID(c), "http", string(op), err)
	}
	respondError(c, status, code, msg, details)
}

func classify(err error) (int, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_error"
	case domain.IsNotFound(err):
		return http.StatusNotFound, "not_found"
	case domain.IsConflict(err):
		return http.StatusConflict, "conflict"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "canceled"
	case domain.IsInternal(err):
		return http.StatusInternalServerError, "internal_error"
	}

	he, ok := apiclient.AsHTTPError(err)
	if !ok {
		return http.StatusInternalServerError, "internal_error"
	}
	switch he.Kind() {
	case apiclient.KindNetwork:
		return http.StatusBadGateway, apiclient.CodeNetwork
	case apiclient.KindUnauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case apiclient.KindForbidden:
		return http.StatusForbidden, "forbidden"
	}
	if he.Status >= 400 && he.Status < 500 {
		return he.Status, "upstream_rejected"
	}
	return http.StatusBadGateway, "upstream_error"
}
