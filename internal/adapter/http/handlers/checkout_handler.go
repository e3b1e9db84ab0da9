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

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// CheckoutHandler handles HTTP requests that start a membership payment.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	log     *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, log *zap.Logger) *CheckoutHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutHandler{usecase: uc, log: log}
}

// CreateCheckoutSession godoc
// @Summary      Create a checkout session
// @Description  Creates a Stripe-hosted checkout session for the digital or classic membership.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      request.CheckoutSessionRequest  true  "Membership and purchaser"
// @Success      200      {object}  response.CheckoutSessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /checkout/sessions [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), payload.ToDomain(), c.GetHeader("Origin"))
	if err != nil {
		h.log.Warn("[checkout][handler] create session failed", zap.String("membership_type", payload.MembershipType), zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// CreatePaymentLink godoc
// @Summary      Create a payment link
// @Description  Creates a checkout session with caller-provided redirect URLs. Email is optional.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentLinkRequest  true  "Membership and redirect URLs"
// @Success      200      {object}  response.CheckoutSessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /checkout/payment-links [post]
func (h *CheckoutHandler) CreatePaymentLink(c *gin.Context) {
	var payload request.PaymentLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.CreatePaymentLink(c.Request.Context(), payload.ToDomain())
	if err != nil {
		h.log.Warn("[checkout][handler] create payment link failed", zap.String("membership_type", payload.MembershipType), zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMembershipType):
		return pkg.NewDomainErrorSimple("INVALID_MEMBERSHIP_TYPE", "Type d'adhésion invalide", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "Email requis", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Email invalide", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRedirectURL):
		return pkg.NewDomainErrorSimple("INVALID_REDIRECT_URL", "URLs de redirection requises", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentProvider):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Erreur lors de la création de la session de paiement", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
