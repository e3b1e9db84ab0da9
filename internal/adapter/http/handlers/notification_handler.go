package handlers

import (
	request "andar_membership/internal/adapter/http/dto/request"
	response "andar_membership/internal/adapter/http/dto/response"
	"andar_membership/internal/usecase"
	"andar_membership/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the confirmation email log and a template test endpoint.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	log     *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, log *zap.Logger) *NotificationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationHandler{usecase: uc, log: log}
}

// ListNotifications godoc
// @Summary      List confirmation emails
// @Tags         notifications
// @Produce      json
// @Param        email        query     string  true  "Recipient email"
// @Param        X-Admin-Key  header    string  true  "Admin API key"
// @Success      200          {array}   response.NotificationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      401          {object}  pkg.HTTPError
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	list, err := h.usecase.ListByRecipient(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// SendTestNotification godoc
// @Summary      Send a test confirmation email
// @Description  Not available in production.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request      body      request.TestNotificationRequest  true  "Recipient"
// @Param        X-Admin-Key  header    string                           true  "Admin API key"
// @Success      200          {object}  response.NotificationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      502          {object}  pkg.HTTPError
// @Router       /notifications/test [post]
func (h *NotificationHandler) SendTestNotification(c *gin.Context) {
	var payload request.TestNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	n, err := h.usecase.SendTest(c.Request.Context(), payload.ToDomain())
	if err != nil {
		h.log.Warn("[notification][handler] test email failed", zap.Error(err))
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainError("EMAIL_PROVIDER_ERROR", "Email could not be delivered", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNotificationLogDown):
		return pkg.NewDomainErrorSimple("NOTIFICATION_LOG_UNAVAILABLE", "Notification log unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
