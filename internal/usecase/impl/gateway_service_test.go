package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmgrid/internal/domain/entity"
	mockrepo "farmgrid/internal/mocks/repository"
	mockservice "farmgrid/internal/mocks/service"
	"farmgrid/internal/usecase"
)

const (
	testOperatorPhone     = "+254712345678"
	testOperatorCanonical = "254712345678"
)

type gatewayFixtures struct {
	users        *mockrepo.UserRepository
	farmers      *mockrepo.FarmerRepository
	cooperatives *mockrepo.CooperativeRepository
	commodities  *mockrepo.CommodityRepository
	collections  *mockrepo.CollectionRepository
	smsLogs      *mockrepo.SmsLogRepository
	sender       *mockservice.SMSSender
	publisher    *mockservice.EventPublisher
	gateway      usecase.GatewayUsecase

	auditLog *entity.SmsLog
}

func newGatewayFixtures() *gatewayFixtures {
	f := &gatewayFixtures{
		users:        new(mockrepo.UserRepository),
		farmers:      new(mockrepo.FarmerRepository),
		cooperatives: new(mockrepo.CooperativeRepository),
		commodities:  new(mockrepo.CommodityRepository),
		collections:  new(mockrepo.CollectionRepository),
		smsLogs:      new(mockrepo.SmsLogRepository),
		sender:       new(mockservice.SMSSender),
		publisher:    new(mockservice.EventPublisher),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.gateway = NewGatewayService(
		logger,
		f.users, f.farmers, f.cooperatives, f.commodities, f.collections, f.smsLogs,
		f.sender, f.publisher,
	)

	return f
}

// expectAudit arms the audit mock and captures the written row.
func (f *gatewayFixtures) expectAudit(err error) {
	f.smsLogs.On("Create", mock.Anything, mock.Anything).Return(err).Once().
		Run(func(args mock.Arguments) {
			f.auditLog = args.Get(1).(*entity.SmsLog)
		})
}

// allowSends accepts any outbound SMS; individual tests inspect sentMessages.
func (f *gatewayFixtures) allowSends() {
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

func (f *gatewayFixtures) handle(t *testing.T, from, text string) *usecase.DispatchResult {
	t.Helper()

	raw, err := json.Marshal(map[string]string{"from": from, "text": text})
	require.NoError(t, err)

	result, err := f.gateway.HandleInbound(context.Background(), &usecase.InboundMessage{
		From: from,
		Text: text,
		Raw:  raw,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	return result
}

// sentMessages returns every outbound SMS body in send order.
func (f *gatewayFixtures) sentMessages() []string {
	var msgs []string
	for _, call := range f.sender.Calls {
		if call.Method == "Send" {
			msgs = append(msgs, call.Arguments.String(2))
		}
	}

	return msgs
}

// sentRecipients returns every outbound SMS recipient in send order.
func (f *gatewayFixtures) sentRecipients() []string {
	var recipients []string
	for _, call := range f.sender.Calls {
		if call.Method == "Send" {
			recipients = append(recipients, call.Arguments.String(1))
		}
	}

	return recipients
}

func activeOperator() *entity.User {
	coopID := int64(7)

	return &entity.User{
		ID:            11,
		FirstName:     "Grace",
		LastName:      "Wanjiku",
		Phone:         testOperatorCanonical,
		Role:          entity.RoleFieldOperator,
		CooperativeID: &coopID,
		IsActive:      true,
	}
}

func TestHandleInbound_UnknownCommand(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	result := f.handle(t, testOperatorPhone, "BALANCE account 1")

	assert.False(t, result.Success)
	assert.Equal(t, "BALANCE", result.Command)
	assert.Equal(t, "Unknown command: BALANCE", result.Message)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Unknown command: BALANCE")
	assert.Contains(t, msgs[0], "COLLECT, REGISTER_FARMER, STATUS, HELP")
	assert.Contains(t, msgs[0], "Send HELP for usage.")

	require.NotNil(t, f.auditLog)
	assert.Equal(t, entity.SmsLogStatusFailed, f.auditLog.Status)
	assert.Equal(t, "BALANCE", f.auditLog.Command)
	f.smsLogs.AssertExpectations(t)
}

func TestHandleInbound_BlankMessage(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	result := f.handle(t, testOperatorPhone, "   ")

	assert.False(t, result.Success)
	assert.Empty(t, result.Command)

	require.NotNil(t, f.auditLog)
	assert.Empty(t, f.auditLog.Command)
	assert.Equal(t, entity.SmsLogStatusFailed, f.auditLog.Status)
}

func TestHandleInbound_Help(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	result := f.handle(t, testOperatorPhone, "help")

	assert.True(t, result.Success)
	assert.Equal(t, "HELP", result.Command)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, helpMessage, msgs[0])

	require.NotNil(t, f.auditLog)
	assert.Equal(t, entity.SmsLogStatusSuccess, f.auditLog.Status)
	assert.Equal(t, "HELP", f.auditLog.Command)
}

func TestHandleInbound_AuditFailureSwallowed(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(assert.AnError)
	f.allowSends()

	result := f.handle(t, testOperatorPhone, "HELP")

	// A failed audit write never changes the outcome the sender saw.
	assert.True(t, result.Success)
}

func TestHandleInbound_SendFailureSwallowed(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	result := f.handle(t, testOperatorPhone, "HELP")

	assert.True(t, result.Success)
}

func TestHandleInbound_PanicRecovered(t *testing.T) {
	f := newGatewayFixtures()
	f.allowSends()
	f.smsLogs.On("Create", mock.Anything, mock.Anything).Return(nil).
		Run(func(args mock.Arguments) {
			f.auditLog = args.Get(1).(*entity.SmsLog)
		})
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Run(func(mock.Arguments) { panic("storage exploded") }).
		Return(nil, nil)

	result, err := f.gateway.HandleInbound(context.Background(), &usecase.InboundMessage{
		From: testOperatorPhone,
		Text: "COLLECT farmer_id 5 quantity 10 commodity_id 2",
		Raw:  []byte(`{}`),
	})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, "Internal server error", result.Message)

	// The sender still gets a best-effort apology and the attempt is audited.
	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "An internal server error occurred.")
	require.NotNil(t, f.auditLog)
	assert.Equal(t, entity.SmsLogStatusFailed, f.auditLog.Status)
}

func TestHandleInbound_AuditCapturesPayload(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	f.handle(t, testOperatorPhone, "HELP")

	require.NotNil(t, f.auditLog)
	assert.Equal(t, testOperatorPhone, f.auditLog.PhoneNumber)
	assert.Equal(t, "HELP", f.auditLog.Message)
	assert.JSONEq(t, `{"from":"+254712345678","text":"HELP"}`, f.auditLog.WebhookData)
	assert.False(t, f.auditLog.ProcessedAt.IsZero())
}
