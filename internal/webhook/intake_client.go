package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for webhook outcomes. Callers map these onto the
// HTTP error taxonomy.
var (
	ErrNotConfigured = errors.New("webhook url not configured")
	ErrTimeout       = errors.New("webhook call timed out")
	ErrUpstream      = errors.New("webhook returned non-success status")
)

// IntakeAttachment is one base64-encoded file in the intake payload.
type IntakeAttachment struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// IntakePayload is the JSON body forwarded to the workflow-automation
// endpoint on ticket submission.
type IntakePayload struct {
	TicketReference string             `json:"ticketReference"`
	FullName        string             `json:"fullName"`
	Email           string             `json:"email"`
	Category        string             `json:"category"`
	Description     string             `json:"description"`
	SubmissionDate  time.Time          `json:"submissionDate"`
	Status          string             `json:"status"`
	Attachments     []IntakeAttachment `json:"attachments"`
	UserAgent       string             `json:"userAgent"`
	IPAddress       string             `json:"ipAddress"`
}

// IntakeClient delivers ticket submissions to the intake webhook. The
// call is fire-once: no retries, no queueing, no local persistence.
type IntakeClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewIntakeClient builds a client; url may be empty, in which case
// Submit fails with ErrNotConfigured.
func NewIntakeClient(url string, timeout time.Duration, logger *zap.Logger) *IntakeClient {
	return &IntakeClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Configured reports whether an endpoint URL is present.
func (c *IntakeClient) Configured() bool {
	return c.url != ""
}

// Submit POSTs the payload and classifies the outcome. Any 2xx is
// success; a deadline hit maps to ErrTimeout, everything else to
// ErrUpstream.
func (c *IntakeClient) Submit(ctx context.Context, payload IntakePayload) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Warn("intake webhook timed out", zap.String("reference", payload.TicketReference))
			return ErrTimeout
		}
		c.logger.Warn("intake webhook unreachable", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("intake webhook rejected submission",
			zap.Int("status", resp.StatusCode),
			zap.String("reference", payload.TicketReference))
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
