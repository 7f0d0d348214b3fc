package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// StatusQuery is the body forwarded to the status webhook. The remote
// service decides whether the text is an email or a ticket reference.
type StatusQuery struct {
	Query string `json:"query"`
}

// TicketStatusView is the normalized shape returned to the portal when
// a ticket is found.
type TicketStatusView struct {
	Reference   string     `json:"ticketReference"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Assignee    string     `json:"assignee,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Attachments []string   `json:"attachmentLinks,omitempty"`
}

// StatusResult wraps the found/not-found outcome.
type StatusResult struct {
	Found  bool             `json:"found"`
	Ticket TicketStatusView `json:"ticket"`
}

// StatusClient queries the status webhook. No caching; every lookup is
// a fresh round trip.
type StatusClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewStatusClient builds a client; url may be empty, in which case
// Lookup fails with ErrNotConfigured.
func NewStatusClient(url string, timeout time.Duration, logger *zap.Logger) *StatusClient {
	return &StatusClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Configured reports whether an endpoint URL is present.
func (c *StatusClient) Configured() bool {
	return c.url != ""
}

// Lookup forwards the query and maps the response. Network errors and
// non-2xx statuses both surface as ErrUpstream; the resolver does not
// distinguish "no such ticket" from "service down" for the caller.
func (c *StatusClient) Lookup(ctx context.Context, query string) (*StatusResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(StatusQuery{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Warn("status webhook timed out")
			return nil, ErrTimeout
		}
		c.logger.Warn("status webhook unreachable", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("status webhook returned error", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var result StatusResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return &result, nil
}
