package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmgrid/config"
	"farmgrid/internal/delivery/http/middleware"
	"farmgrid/internal/delivery/http/validator"
	mockusecase "farmgrid/internal/mocks/usecase"
	"farmgrid/internal/usecase"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger, &config.Config{}).HandleHTTPError

	return e
}

func newWebhookEcho(t *testing.T, gateway *mockusecase.GatewayUsecase) *echo.Echo {
	t.Helper()

	e := newTestEcho(t)
	h := NewWebhookHandler(gateway, &config.Config{
		SMS: &config.SMSConfig{Shortcode: "40404"},
	})
	e.POST("/webhooks/sms/incoming", h.ProcessIncomingSMS)
	e.POST("/webhooks/sms/test", h.TestWebhook)

	return e
}

func performRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestProcessIncomingSMS_MissingText(t *testing.T) {
	gateway := new(mockusecase.GatewayUsecase)
	e := newWebhookEcho(t, gateway)

	rec := performRequest(e, http.MethodPost, "/webhooks/sms/incoming",
		`{"from":"+254712345678"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MALFORMED_PAYLOAD", errInfo["code"])

	// A rejected payload never reaches the gateway, so retries stay idempotent.
	gateway.AssertNotCalled(t, "HandleInbound", mock.Anything, mock.Anything)
}

func TestProcessIncomingSMS_InvalidJSON(t *testing.T) {
	gateway := new(mockusecase.GatewayUsecase)
	e := newWebhookEcho(t, gateway)

	rec := performRequest(e, http.MethodPost, "/webhooks/sms/incoming", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	gateway.AssertNotCalled(t, "HandleInbound", mock.Anything, mock.Anything)
}

func TestProcessIncomingSMS_OK(t *testing.T) {
	gateway := new(mockusecase.GatewayUsecase)
	e := newWebhookEcho(t, gateway)

	payload := `{"from":"+254712345678","text":"HELP","to":"40404","id":"msg_1"}`

	var received *usecase.InboundMessage
	gateway.On("HandleInbound", mock.Anything, mock.Anything).
		Return(&usecase.DispatchResult{Success: true, Command: "HELP"}, nil).
		Run(func(args mock.Arguments) {
			received = args.Get(1).(*usecase.InboundMessage)
		})

	rec := performRequest(e, http.MethodPost, "/webhooks/sms/incoming", payload)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body webhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "SMS processed successfully", body.Message)
	assert.Equal(t, "HELP", body.Command)
	assert.True(t, body.Result)

	require.NotNil(t, received)
	assert.Equal(t, "+254712345678", received.From)
	assert.Equal(t, "HELP", received.Text)
	assert.Equal(t, "40404", received.To)
	assert.Equal(t, "msg_1", received.ProviderID)
	assert.JSONEq(t, payload, string(received.Raw))
}

func TestProcessIncomingSMS_FailedCommandStillAcknowledged(t *testing.T) {
	gateway := new(mockusecase.GatewayUsecase)
	e := newWebhookEcho(t, gateway)

	gateway.On("HandleInbound", mock.Anything, mock.Anything).
		Return(&usecase.DispatchResult{
			Success: false,
			Command: "BALANCE",
			Message: "Unknown command: BALANCE",
		}, nil)

	rec := performRequest(e, http.MethodPost, "/webhooks/sms/incoming",
		`{"from":"+254712345678","text":"BALANCE"}`)

	// The provider gets 200 either way; only the result flag reflects the outcome.
	assert.Equal(t, http.StatusOK, rec.Code)

	var body webhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "BALANCE", body.Command)
	assert.False(t, body.Result)
}

func TestProcessIncomingSMS_GatewayError(t *testing.T) {
	gateway := new(mockusecase.GatewayUsecase)
	e := newWebhookEcho(t, gateway)

	gateway.On("HandleInbound", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	rec := performRequest(e, http.MethodPost, "/webhooks/sms/incoming",
		`{"from":"+254712345678","text":"HELP"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INTERNAL_ERROR", errInfo["code"])
}

func TestTestWebhook_Defaults(t *testing.T) {
	gateway := new(mockusecase.GatewayUsecase)
	e := newWebhookEcho(t, gateway)

	var received *usecase.InboundMessage
	gateway.On("HandleInbound", mock.Anything, mock.Anything).
		Return(&usecase.DispatchResult{Success: true, Command: "HELP"}, nil).
		Run(func(args mock.Arguments) {
			received = args.Get(1).(*usecase.InboundMessage)
		})

	rec := performRequest(e, http.MethodPost, "/webhooks/sms/test", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "+254112407259", received.From)
	assert.Equal(t, "HELP", received.Text)
	assert.Equal(t, "40404", received.To)
	assert.True(t, strings.HasPrefix(received.ProviderID, "test_"))
}

func TestTestWebhook_CustomMessage(t *testing.T) {
	gateway := new(mockusecase.GatewayUsecase)
	e := newWebhookEcho(t, gateway)

	var received *usecase.InboundMessage
	gateway.On("HandleInbound", mock.Anything, mock.Anything).
		Return(&usecase.DispatchResult{Success: true, Command: "STATUS"}, nil).
		Run(func(args mock.Arguments) {
			received = args.Get(1).(*usecase.InboundMessage)
		})

	rec := performRequest(e, http.MethodPost, "/webhooks/sms/test",
		`{"from":"0712345678","text":"STATUS"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "0712345678", received.From)
	assert.Equal(t, "STATUS", received.Text)
}
