package routes

import (
	"andar_membership/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathCheckout      = "/checkout"
	PathWebhooks      = "/webhooks"
	PathNotifications = "/notifications"
	PathLegacyWebhook = "/api/webhook"
)

func addMembershipRoutes(rg *gin.RouterGroup, cfg config.Config, h routeHandlers, log *zap.Logger) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/sessions", h.checkout.CreateCheckoutSession)
		checkout.POST("/payment-links", h.checkout.CreatePaymentLink)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.Any("/stripe", h.webhook.HandleStripeWebhook)
	}

	notifications := rg.Group(PathNotifications, requireAdminKey(cfg.AdminAPIKey))
	{
		notifications.GET("", h.notification.ListNotifications)
		if !cfg.IsProduction() {
			notifications.POST("/test", h.notification.SendTestNotification)
		} else {
			log.Info("[routes] test notification endpoint disabled in production")
		}
	}
}
