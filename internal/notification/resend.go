package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// DefaultResendURL is the API root; request paths are resolved against it.
const DefaultResendURL = "https://api.resend.com/"

var ErrRequest = errors.New("resend: request failed")

// ResendSender mails confirmations to the salon inbox through the Resend API.
type ResendSender struct {
	client *resend.Client
	apiKey string
	from   string
	to     string
	logger *zap.Logger
}

func NewResendSender(baseURL, apiKey, from, to string, timeout time.Duration, logger *zap.Logger) *ResendSender {
	client := resend.NewCustomClient(&http.Client{Timeout: timeout}, apiKey)

	if baseURL == "" {
		baseURL = DefaultResendURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if u, err := url.Parse(baseURL); err == nil {
		client.BaseURL = u
	} else {
		logger.Warn("invalid resend base url, using default", zap.String("url", baseURL), zap.Error(err))
	}

	return &ResendSender{
		client: client,
		apiKey: apiKey,
		from:   from,
		to:     to,
		logger: logger.Named("resend"),
	}
}

func (s *ResendSender) SendConfirmation(ctx context.Context, c Confirmation) error {
	if s.apiKey == "" || s.to == "" {
		s.logger.Info("confirmation email disabled, skipping",
			zap.String("booking_date", c.BookingDate),
			zap.String("booking_time", c.BookingTime),
		)
		return nil
	}

	html, err := RenderHTML(c)
	if err != nil {
		return err
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: c.CustomerEmail,
		Subject: Subject(c),
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}

	s.logger.Info("confirmation email sent",
		zap.String("email_id", sent.Id),
		zap.String("booking_date", c.BookingDate),
		zap.String("booking_time", c.BookingTime),
	)
	return nil
}
