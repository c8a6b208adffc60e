package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/domain/service"
)

func testFarmer() *entity.Farmer {
	coopID := int64(3)

	return &entity.Farmer{
		ID:            5,
		FirstName:     "John",
		LastName:      "Mwangi",
		Phone:         "254700000001",
		CooperativeID: &coopID,
		IsActive:      true,
	}
}

func testCommodity() *entity.Commodity {
	return &entity.Commodity{
		ID:   2,
		Name: "Maize",
		Unit: "kg",
	}
}

func TestHandleCollect_MissingArgs(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5")

	assert.False(t, result.Success)
	assert.Equal(t, "Missing required fields", result.Message)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "❌ Error: Missing: quantity, commodity_id.")
	assert.Contains(t, msgs[0], collectUsage)

	// Validation runs before any lookup.
	f.users.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCollect_UnknownSender(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(nil, repository.ErrUserNotFound)

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity 10 commodity_id 2")

	assert.False(t, result.Success)
	assert.Equal(t, "Unauthorized user", result.Message)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "❌ Error: You are not registered as a Field Operator.", msgs[0])
	f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCollect_WrongRole(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	admin := activeOperator()
	admin.Role = entity.RoleCoopAdmin
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(admin, nil)

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity 10 commodity_id 2")

	assert.Equal(t, "Unauthorized user", result.Message)
	f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCollect_InactiveOperator(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	operator := activeOperator()
	operator.IsActive = false
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(operator, nil)

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity 10 commodity_id 2")

	assert.Equal(t, "Unauthorized user", result.Message)
	f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCollect_FarmerNotFound(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(activeOperator(), nil)
	f.farmers.On("FindByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrFarmerNotFound)

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 99 quantity 10 commodity_id 2")

	assert.Equal(t, "Farmer not found", result.Message)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "❌ Error: Farmer with ID 99 not found.", msgs[0])
	f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCollect_NonNumericFarmerID(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(activeOperator(), nil)

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id abc quantity 10 commodity_id 2")

	assert.Equal(t, "Farmer not found", result.Message)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "❌ Error: Farmer with ID abc not found.", msgs[0])

	// A non-numeric id never reaches storage.
	f.farmers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestHandleCollect_CommodityNotFound(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(activeOperator(), nil)
	f.farmers.On("FindByID", mock.Anything, int64(5)).Return(testFarmer(), nil)
	f.commodities.On("FindByID", mock.Anything, int64(42)).
		Return(nil, repository.ErrCommodityNotFound)

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity 10 commodity_id 42")

	assert.Equal(t, "Commodity not found", result.Message)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "❌ Error: Commodity with ID 42 not found.", msgs[0])
	f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCollect_InvalidQuantity(t *testing.T) {
	for _, quantity := range []string{"abc", "-5", "0", "NaN", "nan", "Inf", "-Inf", "Infinity"} {
		t.Run(quantity, func(t *testing.T) {
			f := newGatewayFixtures()
			f.expectAudit(nil)
			f.allowSends()
			f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
				Return(activeOperator(), nil)
			f.farmers.On("FindByID", mock.Anything, int64(5)).Return(testFarmer(), nil)
			f.commodities.On("FindByID", mock.Anything, int64(2)).Return(testCommodity(), nil)

			result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity "+quantity+" commodity_id 2")

			assert.Equal(t, "Invalid quantity", result.Message)

			msgs := f.sentMessages()
			require.Len(t, msgs, 1)
			assert.Equal(t, "❌ Error: Quantity must be a positive number.", msgs[0])
			f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleCollect_StorageError(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(activeOperator(), nil)
	f.farmers.On("FindByID", mock.Anything, int64(5)).Return(testFarmer(), nil)
	f.commodities.On("FindByID", mock.Anything, int64(2)).Return(testCommodity(), nil)
	f.collections.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity 10 commodity_id 2")

	assert.False(t, result.Success)
	assert.Equal(t, "Database error", result.Message)

	msgs := f.sentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "❌ Error: Failed to record collection. Please try again.", msgs[0])
}

func TestHandleCollect_Success(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()

	farmer := testFarmer()
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(activeOperator(), nil)
	f.farmers.On("FindByID", mock.Anything, int64(5)).Return(farmer, nil)
	f.commodities.On("FindByID", mock.Anything, int64(2)).Return(testCommodity(), nil)

	var created *entity.Collection
	f.collections.On("Create", mock.Anything, mock.Anything).Return(nil).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Collection)
			created.ID = 42
		})

	var published *service.CollectionEvent
	f.publisher.On("PublishCollectionEvent", mock.Anything, mock.Anything).Return(nil).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.CollectionEvent)
		})

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity 50.5 commodity_id 2")

	assert.True(t, result.Success)
	assert.Equal(t, "COLLECT", result.Command)
	assert.Equal(t, int64(42), result.Data["collection_id"])

	require.NotNil(t, created)
	assert.Equal(t, int64(5), created.FarmerID)
	assert.Equal(t, int64(11), created.FieldOperatorID)
	// The cooperative comes from the farmer record, never from the message.
	require.NotNil(t, created.CooperativeID)
	assert.Equal(t, int64(3), *created.CooperativeID)
	assert.Equal(t, entity.CollectionStatusInStock, created.Status)
	assert.Equal(t, 50.5, created.Quantity)
	assert.Equal(t, "SMS Collection: COLLECT farmer_id 5 quantity 50.5 commodity_id 2", created.Notes)
	assert.False(t, created.CollectedAt.IsZero())

	msgs := f.sentMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "✅ Collection #42 recorded successfully!\nFarmer: John Mwangi\nCommodity: Maize\nQuantity: 50.5 kg", msgs[0])
	assert.Equal(t, "Your produce has been collected!\nQuantity: 50.5 kg of Maize\nCollection ID: 42", msgs[1])

	recipients := f.sentRecipients()
	assert.Equal(t, testOperatorPhone, recipients[0])
	assert.Equal(t, farmer.Phone, recipients[1])

	require.NotNil(t, published)
	assert.Equal(t, int64(42), published.CollectionID)
	assert.Equal(t, int64(5), published.FarmerID)

	require.NotNil(t, f.auditLog)
	assert.Equal(t, entity.SmsLogStatusSuccess, f.auditLog.Status)
	assert.Equal(t, "COLLECT", f.auditLog.Command)
}

func TestHandleCollect_NoPublisherConfigured(t *testing.T) {
	f := newGatewayFixtures()
	f.expectAudit(nil)
	f.allowSends()
	f.users.On("FindByPhone", mock.Anything, testOperatorCanonical, testOperatorPhone).
		Return(activeOperator(), nil)
	f.farmers.On("FindByID", mock.Anything, int64(5)).Return(testFarmer(), nil)
	f.commodities.On("FindByID", mock.Anything, int64(2)).Return(testCommodity(), nil)
	f.collections.On("Create", mock.Anything, mock.Anything).Return(nil)

	// Rebuild the service with a nil publisher, as deployed without pub/sub.
	svc := f.gateway.(*gatewayService)
	svc.publisher = nil

	result := f.handle(t, testOperatorPhone, "COLLECT farmer_id 5 quantity 10 commodity_id 2")

	assert.True(t, result.Success)
	f.publisher.AssertNotCalled(t, "PublishCollectionEvent", mock.Anything, mock.Anything)
}
