package email

import (
	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBrevoBaseURL = "https://api.brevo.com/v3"
	smtpEmailPath       = "/smtp/email"
	maxErrorBodyBytes   = 4 << 10
)

var ErrMissingBrevoAPIKey = errors.New("missing BREVO_API_KEY")

// BrevoSender delivers templated transactional emails through the Brevo HTTP API.
// One call to Send is one attempt; retries belong to the caller.
type BrevoSender struct {
	apiKey  string
	baseURL string
	sender  brevoContact
	client  *http.Client
	log     *zap.Logger
}

var _ interfaces.IEmailSender = (*BrevoSender)(nil)

type BrevoSenderOptions struct {
	APIKey      string
	BaseURL     string
	SenderEmail string
	SenderName  string
	HTTPClient  *http.Client
}

type brevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendRequest struct {
	Sender     brevoContact                `json:"sender"`
	To         []brevoContact              `json:"to"`
	TemplateID int64                       `json:"templateId"`
	Params     entities.ConfirmationParams `json:"params"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}

type brevoErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProviderError is a non-2xx answer from Brevo.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("brevo: status %d: %s %s", e.StatusCode, e.Code, e.Message)
}

// Temporary reports whether retrying the same request may succeed.
func (e *ProviderError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

func NewBrevoSender(opts BrevoSenderOptions, log *zap.Logger) (*BrevoSender, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingBrevoAPIKey
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBrevoBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BrevoSender{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		sender:  brevoContact{Email: opts.SenderEmail, Name: opts.SenderName},
		client:  opts.HTTPClient,
		log:     log,
	}, nil
}

func (s *BrevoSender) Send(ctx context.Context, email entities.TransactionalEmail) (string, error) {
	body, err := json.Marshal(brevoSendRequest{
		Sender:     s.sender,
		To:         []brevoContact{{Email: email.RecipientEmail, Name: email.RecipientName}},
		TemplateID: email.TemplateID,
		Params:     email.Params,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", interfaces.ErrPermanentDelivery, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+smtpEmailPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", interfaces.ErrPermanentDelivery, err)
	}
	req.Header.Set("api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// timeouts and network errors are retryable
		return "", fmt.Errorf("brevo: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := &ProviderError{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		var eb brevoErrorResponse
		if json.Unmarshal(raw, &eb) == nil {
			perr.Code, perr.Message = eb.Code, eb.Message
		}
		s.log.Warn("[email][brevo] send rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("code", perr.Code),
		)
		if perr.Temporary() {
			return "", perr
		}
		return "", fmt.Errorf("%w: %w", interfaces.ErrPermanentDelivery, perr)
	}

	var out brevoSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// accepted; never resend
		s.log.Warn("[email][brevo] unreadable success response", zap.Error(err))
		return "", nil
	}
	return out.MessageID, nil
}
