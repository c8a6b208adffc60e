// Package sms contains outbound SMS provider implementations.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"farmgrid/internal/domain/service"
	"farmgrid/internal/errors"
)

const defaultSendTimeout = 10 * time.Second

// httpSender delivers SMS through an HTTP gateway with a JSON API.
type httpSender struct {
	client    *http.Client
	endpoint  string
	apiKey    string
	shortcode string
	logger    *slog.Logger
}

// NewHTTPSender is the constructor for httpSender.
func NewHTTPSender(endpoint, apiKey, shortcode string, timeout time.Duration, logger *slog.Logger) service.SMSSender {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	return &httpSender{
		client:    &http.Client{Timeout: timeout},
		endpoint:  endpoint,
		apiKey:    apiKey,
		shortcode: shortcode,
		logger:    logger,
	}
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Content string `json:"content"`
}

// Send posts one message to the gateway endpoint.
func (s *httpSender) Send(ctx context.Context, to, message string) error {
	payload, err := json.Marshal(sendRequest{
		To:      to,
		From:    s.shortcode,
		Content: message,
	})
	if err != nil {
		return errors.Wrap(err, "marshal sms payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send sms request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("sms gateway returned %d: %s", resp.StatusCode, string(body))
	}

	s.logger.Debug("SMS sent",
		slog.String("to", to),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}
