package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvProduction = "production"

	EventStoreDynamoDB = "dynamodb"
	EventStoreRedis    = "redis"
	EventStoreMemory   = "memory"
)

// Config holds every runtime option of the service.
//
// It is built once in main and passed down; nothing below the routes package
// reads the environment directly.
type Config struct {
	Port    string
	AppEnv  string
	SiteURL string

	Stripe StripeConfig
	Brevo  BrevoConfig
	Notify NotifyConfig

	EventStore          string
	ProcessedEventTTL   time.Duration
	ProcessedEventTable string
	NotificationsTable  string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int

	AdminAPIKey string

	AWS AWSConfig
}

type StripeConfig struct {
	SecretKey        string
	LiveSecretKey    string
	WebhookSecret    string
	CLIWebhookSecret string
	WebhookDebug     bool
	BypassSignature  bool
	GatewayMock      bool
}

type BrevoConfig struct {
	APIKey      string
	BaseURL     string
	SenderEmail string
	SenderName  string
	TemplateID  int64
}

type NotifyConfig struct {
	MaxAttempts    int
	BackoffBase    time.Duration
	AttemptTimeout time.Duration
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:    getEnv("PORT", "8080"),
		AppEnv:  strings.ToLower(getEnv("APP_ENV", "development")),
		SiteURL: strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
		Stripe: StripeConfig{
			SecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
			LiveSecretKey:    os.Getenv("STRIPE_LIVE_SECRET_KEY"),
			WebhookSecret:    os.Getenv("STRIPE_WEBHOOK_SECRET"),
			CLIWebhookSecret: os.Getenv("STRIPE_CLI_WEBHOOK_SECRET"),
			WebhookDebug:     getEnvBool("STRIPE_WEBHOOK_DEBUG", false),
			BypassSignature:  getEnvBool("STRIPE_WEBHOOK_BYPASS_SIGNATURE", false),
			GatewayMock:      getEnvBool("PAYMENT_GATEWAY_MOCK", false),
		},
		Brevo: BrevoConfig{
			APIKey:      os.Getenv("BREVO_API_KEY"),
			BaseURL:     strings.TrimRight(getEnv("BREVO_BASE_URL", "https://api.brevo.com/v3"), "/"),
			SenderEmail: getEnv("BREVO_SENDER_EMAIL", "contact@andar.fr"),
			SenderName:  getEnv("BREVO_SENDER_NAME", "ANDAR"),
			TemplateID:  int64(getEnvInt("BREVO_TEMPLATE_ID", 7)),
		},
		Notify: NotifyConfig{
			MaxAttempts:    getEnvInt("NOTIFY_MAX_ATTEMPTS", 3),
			BackoffBase:    getEnvDuration("NOTIFY_BACKOFF_BASE", 500*time.Millisecond),
			AttemptTimeout: getEnvDuration("NOTIFY_ATTEMPT_TIMEOUT", 5*time.Second),
		},
		EventStore:          strings.ToLower(getEnv("EVENT_STORE", EventStoreDynamoDB)),
		ProcessedEventTTL:   getEnvDuration("PROCESSED_EVENT_TTL", 72*time.Hour),
		ProcessedEventTable: getEnv("PROCESSED_EVENTS_TABLE", "processed_events"),
		NotificationsTable:  getEnv("NOTIFICATIONS_TABLE", "notifications"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		AdminAPIKey:         os.Getenv("ADMIN_API_KEY"),
		AWS: AWSConfig{
			Region:           getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// StripeAPIKey picks the live key in production when one is configured.
func (c Config) StripeAPIKey() string {
	if c.IsProduction() && c.Stripe.LiveSecretKey != "" {
		return c.Stripe.LiveSecretKey
	}
	return c.Stripe.SecretKey
}

// ActiveWebhookSecret returns the CLI secret while debugging with `stripe listen`.
func (c Config) ActiveWebhookSecret() string {
	if c.Stripe.WebhookDebug && c.Stripe.CLIWebhookSecret != "" {
		return c.Stripe.CLIWebhookSecret
	}
	return c.Stripe.WebhookSecret
}

// SignatureBypassAllowed is never true in production.
func (c Config) SignatureBypassAllowed() bool {
	return c.Stripe.BypassSignature && !c.IsProduction()
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
