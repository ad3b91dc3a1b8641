package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/domain/catalog"
)

// --- Mock implementations ---

type mockOrderRepo struct {
	byID map[string]*Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{byID: make(map[string]*Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, o *Order) error {
	cp := *o
	m.byID[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) List(_ context.Context) ([]Order, error) {
	var all []Order
	for _, o := range m.byID {
		all = append(all, *o)
	}
	return all, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]Order, error) {
	if userID == GuestUserID {
		return nil, nil
	}
	var mine []Order
	for _, o := range m.byID {
		if o.UserID == userID {
			mine = append(mine, *o)
		}
	}
	return mine, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	o, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

type awardCall struct {
	userID      string
	subtotal    decimal.Decimal
	pointsUsed  int
	priorOrders int
}

type mockAwarder struct {
	calls []awardCall
	err   error
}

func (m *mockAwarder) OrderPlaced(_ context.Context, userID string, subtotal decimal.Decimal, pointsUsed, priorOrders int) error {
	m.calls = append(m.calls, awardCall{userID, subtotal, pointsUsed, priorOrders})
	return m.err
}

// --- Helpers ---

func testLine(qty int) cart.Line {
	return cart.Line{
		Item: catalog.MenuItem{
			ID:    "lf-01",
			Name:  "Classic Cheesy Fries",
			Price: decimal.RequireFromString("8.99"),
		},
		Quantity: qty,
	}
}

func testPlaceRequest(userID string, typ Type) PlaceRequest {
	return PlaceRequest{
		UserID:          userID,
		Items:           []cart.Line{testLine(2)},
		Subtotal:        decimal.RequireFromString("17.98"),
		Tax:             decimal.RequireFromString("1.4384"),
		Total:           decimal.RequireFromString("19.4184"),
		Type:            typ,
		DeliveryAddress: "12 Spud Lane",
	}
}

// --- Tests ---

func TestPlace_EmptyItems(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	_, err := svc.Place(context.Background(), PlaceRequest{})
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestPlace_DeliveryRequiresAddress(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	req := testPlaceRequest("u1", Delivery)
	req.DeliveryAddress = ""
	_, err := svc.Place(context.Background(), req)
	require.ErrorIs(t, err, ErrAddressRequired)
}

func TestPlace_PickupWithoutAddress(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	req := testPlaceRequest("u1", Pickup)
	req.DeliveryAddress = ""
	o, err := svc.Place(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)
}

func TestPlace_StartsConfirmedAndRounded(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewService(repo, &mockAwarder{})

	req := testPlaceRequest("u1", Delivery)
	req.Tax = decimal.RequireFromString("1.29456")
	o, err := svc.Place(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.True(t, o.Tax.Equal(decimal.RequireFromString("1.29")), "got %s", o.Tax)

	stored, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Status, stored.Status)
}

func TestPlace_EmptyUserBecomesGuest(t *testing.T) {
	awards := &mockAwarder{}
	svc := NewService(newMockOrderRepo(), awards)

	req := testPlaceRequest("", Delivery)
	o, err := svc.Place(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, GuestUserID, o.UserID)
	assert.Empty(t, awards.calls, "guest orders must not trigger loyalty")
}

func TestPlace_AwardsCountPriorOrders(t *testing.T) {
	awards := &mockAwarder{}
	svc := NewService(newMockOrderRepo(), awards)

	_, err := svc.Place(context.Background(), testPlaceRequest("u1", Delivery))
	require.NoError(t, err)
	_, err = svc.Place(context.Background(), testPlaceRequest("u1", Delivery))
	require.NoError(t, err)

	require.Len(t, awards.calls, 2)
	// priorOrders is the history size before each order, so the first order
	// sees zero and the second sees one.
	assert.Equal(t, 0, awards.calls[0].priorOrders)
	assert.Equal(t, 1, awards.calls[1].priorOrders)
	assert.Equal(t, "u1", awards.calls[0].userID)
}

func TestHistory_GuestEmpty(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	_, err := svc.Place(context.Background(), testPlaceRequest("", Delivery))
	require.NoError(t, err)

	history, err := svc.History(context.Background(), GuestUserID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAdvance_ForwardOneStep(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	o, err := svc.Place(context.Background(), testPlaceRequest("u1", Delivery))
	require.NoError(t, err)

	o, err = svc.Advance(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, o.Status)

	o, err = svc.Advance(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusOutForDelivery, o.Status)
}

func TestAdvance_TerminalNoop(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewService(repo, &mockAwarder{})

	o, err := svc.Place(context.Background(), testPlaceRequest("u1", Pickup))
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(context.Background(), o.ID, StatusPickedUp))

	o, err = svc.Advance(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPickedUp, o.Status)
}

func TestAdvance_NotFound(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	_, err := svc.Advance(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatus_CrossTrackOverride(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	o, err := svc.Place(context.Background(), testPlaceRequest("u1", Delivery))
	require.NoError(t, err)

	// The back-office override ignores the track entirely.
	o, err = svc.SetStatus(context.Background(), o.ID, StatusReadyForPickup)
	require.NoError(t, err)
	assert.Equal(t, StatusReadyForPickup, o.Status)

	// And it can move backward.
	o, err = svc.SetStatus(context.Background(), o.ID, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)
}

func TestPlace_CreatedAtUTC(t *testing.T) {
	svc := NewService(newMockOrderRepo(), &mockAwarder{})

	o, err := svc.Place(context.Background(), testPlaceRequest("u1", Delivery))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, o.CreatedAt.Location())
	assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt, time.Minute)
}
