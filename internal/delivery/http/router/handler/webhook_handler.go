package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"farmgrid/config"
	domainerrors "farmgrid/internal/domain/errors"
	"farmgrid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// smsWebhookPayload is the provider's delivery format. Field names follow the
// common aggregator convention; extra provider fields are kept only for audit.
type smsWebhookPayload struct {
	From      string `json:"from" validate:"required"`
	Text      string `json:"text" validate:"required"`
	To        string `json:"to"`
	Date      string `json:"date"`
	ID        string `json:"id"`
	MessageID string `json:"messageId"`
}

// webhookResponse is the provider-facing acknowledgement envelope.
type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Command string `json:"command"`
	Result  bool   `json:"result"`
}

// WebhookHandler receives inbound SMS deliveries from the provider.
type WebhookHandler struct {
	gateway   usecase.GatewayUsecase
	shortcode string
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(gateway usecase.GatewayUsecase, cfg *config.Config) *WebhookHandler {
	shortcode := ""
	if cfg.SMS != nil {
		shortcode = cfg.SMS.Shortcode
	}

	return &WebhookHandler{
		gateway:   gateway,
		shortcode: shortcode,
	}
}

// ProcessIncomingSMS handles POST /webhooks/sms/incoming.
//
// A payload missing from or text is rejected with 400 before anything is
// parsed or audited. Anything well-formed is acknowledged with 200 whatever
// the command outcome; the provider only needs to know the delivery landed.
func (h *WebhookHandler) ProcessIncomingSMS(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domainerrors.ErrMalformedPayload.WrapMessage("read webhook body")
	}

	var payload smsWebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domainerrors.ErrMalformedPayload.WrapMessage("decode webhook body")
	}
	if err := c.Validate(&payload); err != nil {
		return domainerrors.ErrMalformedPayload.WrapMessage("missing from or text")
	}

	return h.process(c, &payload, raw)
}

// TestWebhook handles POST /webhooks/sms/test. It wraps a hand-written from
// and text into a synthetic provider payload and runs the full pipeline.
// Only registered when test routes are enabled.
func (h *WebhookHandler) TestWebhook(c echo.Context) error {
	var input struct {
		From string `json:"from"`
		Text string `json:"text"`
	}
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMalformedPayload.WrapMessage("decode test body")
	}
	if input.From == "" {
		input.From = "+254112407259"
	}
	if input.Text == "" {
		input.Text = "HELP"
	}

	payload := &smsWebhookPayload{
		From: input.From,
		Text: input.Text,
		To:   h.shortcode,
		Date: time.Now().Format(time.RFC3339),
		ID:   fmt.Sprintf("test_%d", time.Now().UnixMilli()),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return domainerrors.ErrInternalError.WrapMessage("marshal test payload")
	}

	return h.process(c, payload, raw)
}

func (h *WebhookHandler) process(c echo.Context, payload *smsWebhookPayload, raw []byte) error {
	msg := &usecase.InboundMessage{
		From:       payload.From,
		Text:       payload.Text,
		To:         payload.To,
		Date:       payload.Date,
		ProviderID: providerID(payload),
		Raw:        raw,
	}

	result, err := h.gateway.HandleInbound(c.Request().Context(), msg)
	if err != nil {
		return domainerrors.ErrInternalError.WrapMessage("process inbound SMS")
	}

	return c.JSON(http.StatusOK, webhookResponse{
		Success: true,
		Message: "SMS processed successfully",
		Command: result.Command,
		Result:  result.Success,
	})
}

func providerID(payload *smsWebhookPayload) string {
	if payload.ID != "" {
		return payload.ID
	}

	return payload.MessageID
}
