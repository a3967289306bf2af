package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"child-wallet/internal/core/domain"

	"github.com/rs/zerolog"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body.
const SignatureHeader = "X-Signature"

// defaultRetryIntervals are the waits between delivery attempts.
var defaultRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookNotifier implements ports.EventPublisher by POSTing every event to a
// single subscriber URL. Delivery is asynchronous and retried on failure.
type WebhookNotifier struct {
	url            string
	signer         *HMACSigner
	httpClient     HTTPClient
	retryIntervals []time.Duration
	timeout        time.Duration
	log            zerolog.Logger

	mu     sync.Mutex // orders wg.Add against Close
	closed bool
	wg     sync.WaitGroup
	stop   chan struct{}
}

// WebhookOption customizes a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithRetryIntervals replaces the default backoff schedule.
func WithRetryIntervals(intervals ...time.Duration) WebhookOption {
	return func(n *WebhookNotifier) { n.retryIntervals = intervals }
}

// NewWebhookNotifier creates a notifier posting to url, signed with signer.
func NewWebhookNotifier(url string, signer *HMACSigner, httpClient HTTPClient, timeout time.Duration, log zerolog.Logger, opts ...WebhookOption) *WebhookNotifier {
	n := &WebhookNotifier{
		url:            url,
		signer:         signer,
		httpClient:     httpClient,
		retryIntervals: defaultRetryIntervals,
		timeout:        timeout,
		log:            log,
		stop:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Publish schedules delivery of ev and returns immediately. Events
// published after Close are dropped.
func (n *WebhookNotifier) Publish(ev domain.WalletEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		n.log.Error().Err(err).Str("event", ev.Type).Msg("webhook: failed to marshal event")
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		n.log.Warn().Str("event", ev.Type).Str("child_id", ev.ChildID).Msg("webhook: notifier closed, dropping event")
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliverWithRetries(ev, body)
	}()
}

// Close abandons pending retries and waits for in-flight deliveries.
func (n *WebhookNotifier) Close() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.stop)
	}
	n.mu.Unlock()
	n.wg.Wait()
}

func (n *WebhookNotifier) deliverWithRetries(ev domain.WalletEvent, body []byte) {
	signature := n.signer.Sign(body)

	for attempt := 0; attempt <= len(n.retryIntervals); attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(n.retryIntervals[attempt-1]):
			case <-n.stop:
				n.log.Warn().Str("event", ev.Type).Str("child_id", ev.ChildID).Msg("webhook: shutdown, dropping delivery")
				return
			}
		}

		status, err := n.post(body, signature)
		if err != nil {
			n.log.Warn().Err(err).Str("event", ev.Type).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		if status >= 200 && status < 300 {
			n.log.Debug().Str("event", ev.Type).Str("child_id", ev.ChildID).Int("attempt", attempt+1).Msg("webhook: delivered")
			return
		}
		n.log.Warn().Str("event", ev.Type).Int("attempt", attempt+1).Int("status", status).Msg("webhook: non-2xx response, retrying")
	}

	n.log.Error().Str("event", ev.Type).Str("child_id", ev.ChildID).Msg("webhook: all retry attempts exhausted")
}

func (n *WebhookNotifier) post(body []byte, signature string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, signature)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
