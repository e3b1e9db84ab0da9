package routes

import (
	"andar_membership/docs"
	"andar_membership/internal/adapter/http/handlers"
	"andar_membership/internal/config"
	"andar_membership/internal/infrastructure/email"
	"andar_membership/internal/infrastructure/metrics"
	"andar_membership/internal/infrastructure/payments"
	"andar_membership/internal/usecase"
	"andar_membership/internal/usecase/interfaces"
	"andar_membership/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Run starts the server and blocks until SIGINT or SIGTERM.
func Run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, cleanup, err := NewRouter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("[http] membership service listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[http] shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("[http] server shutdown complete")
	return nil
}

// NewRouter wires every dependency from cfg and registers the routes.
// The returned cleanup releases store connections.
func NewRouter(ctx context.Context, cfg config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry, "andar")

	stores, err := newStores(ctx, cfg, log)
	if err != nil {
		return nil, func() {}, err
	}

	h := buildHandlers(cfg, stores, appMetrics, log)

	docs.SwaggerInfo.BasePath = "/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	getRoutes(router, cfg, h, log)

	return router, stores.Close, nil
}

type routeHandlers struct {
	checkout     *handlers.CheckoutHandler
	webhook      *handlers.WebhookHandler
	notification *handlers.NotificationHandler
}

func buildHandlers(cfg config.Config, stores *stores, m interfaces.IMetrics, log *zap.Logger) routeHandlers {
	var gateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(payments.StripeGatewayOptions{
		SecretKey: cfg.StripeAPIKey(),
		MockMode:  cfg.Stripe.GatewayMock,
	}, log)
	if err != nil {
		log.Warn("[routes] stripe gateway not configured", zap.Error(err))
	} else {
		gateway = stripeGateway
	}

	var sender interfaces.IEmailSender
	brevo, err := email.NewBrevoSender(email.BrevoSenderOptions{
		APIKey:      cfg.Brevo.APIKey,
		BaseURL:     cfg.Brevo.BaseURL,
		SenderEmail: cfg.Brevo.SenderEmail,
		SenderName:  cfg.Brevo.SenderName,
	}, log)
	if err != nil {
		log.Warn("[routes] brevo sender not configured", zap.Error(err))
	} else {
		sender = brevo
	}

	if cfg.Stripe.BypassSignature && cfg.IsProduction() {
		log.Warn("[routes] STRIPE_WEBHOOK_BYPASS_SIGNATURE is ignored in production")
	}
	if cfg.ActiveWebhookSecret() == "" {
		log.Warn("[routes] no webhook signing secret configured; signed deliveries will be rejected")
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(gateway, m, cfg.SiteURL, cfg.IsProduction(), log)
	notificationUseCase := usecase.NewNotificationUseCase(
		sender,
		stores.notifications,
		m,
		cfg.Brevo.TemplateID,
		usecase.RetryPolicy{
			MaxAttempts:    cfg.Notify.MaxAttempts,
			BackoffBase:    cfg.Notify.BackoffBase,
			AttemptTimeout: cfg.Notify.AttemptTimeout,
		},
		log,
	)
	webhookUseCase := usecase.NewWebhookUseCase(
		payments.NewStripeWebhookVerifier(cfg.ActiveWebhookSecret()),
		stores.processedEvents,
		usecase.NewCustomerExtractor(gateway, log),
		notificationUseCase,
		m,
		usecase.WebhookUseCaseOptions{
			AllowUnsignedEvents: cfg.SignatureBypassAllowed(),
			ProcessedEventTTL:   cfg.ProcessedEventTTL,
		},
		log,
	)

	return routeHandlers{
		checkout:     handlers.NewCheckoutHandler(checkoutUseCase, log),
		webhook:      handlers.NewWebhookHandler(webhookUseCase, log),
		notification: handlers.NewNotificationHandler(notificationUseCase, log),
	}
}

func getRoutes(router *gin.Engine, cfg config.Config, h routeHandlers, log *zap.Logger) {
	// Legacy path still configured in the Stripe dashboard.
	router.Any(PathLegacyWebhook, h.webhook.HandleStripeWebhook)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMembershipRoutes(v1, cfg, h, log)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[http] recovered from panic",
			zap.String("request_id", logger.RequestID(c)),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
