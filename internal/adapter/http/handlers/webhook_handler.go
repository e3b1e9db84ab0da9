package handlers

import (
	response "andar_membership/internal/adapter/http/dto/response"
	"andar_membership/internal/usecase"
	"andar_membership/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 256 << 10
)

// WebhookHandler receives Stripe event deliveries.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	log     *zap.Logger
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, log *zap.Logger) *WebhookHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookHandler{usecase: uc, log: log}
}

// HandleStripeWebhook godoc
// @Summary      Stripe webhook
// @Description  Verifies the Stripe-Signature header over the raw body and sends the membership confirmation email for checkout.session.completed.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "t=<timestamp>,v1=<signature>"
// @Success      200               {object}  response.WebhookAckResponse
// @Failure      400               {object}  pkg.HTTPError
// @Failure      405               {object}  pkg.HTTPError
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		appErr := pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)
		c.Header("Allow", http.MethodPost)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The signature covers the exact bytes, so the body is read before any parsing.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			appErr := pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Payload too large", http.StatusRequestEntityTooLarge)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Unable to read request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.HandleStripeEvent(c.Request.Context(), payload, c.GetHeader(StripeSignatureHeader))
	if err != nil {
		appErr := mapWebhookError(err)
		h.log.Warn("[webhook][handler] delivery rejected", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.log.Info("[webhook][handler] delivery acknowledged",
		zap.String("event_id", outcome.EventID),
		zap.String("event_type", outcome.EventType),
		zap.String("status", string(outcome.Status)),
	)
	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSignature):
		return pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Missing Stripe-Signature header", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEventPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid event payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
