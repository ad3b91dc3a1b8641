package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/domain/order"
	"github.com/xenking/spud-shack/internal/domain/promo"
	"github.com/xenking/spud-shack/internal/domain/user"
	"github.com/xenking/spud-shack/internal/storage/memkv"
)

// --- Catalog ---

func TestCatalogRepository_EmptyStore(t *testing.T) {
	repo := NewCatalogRepository(memkv.New())
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	special, err := repo.DailySpecialID(ctx)
	require.NoError(t, err)
	assert.Empty(t, special)

	_, err = repo.GetByID(ctx, "lf-01")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCatalogRepository_ReplaceAndGet(t *testing.T) {
	repo := NewCatalogRepository(memkv.New())
	ctx := context.Background()

	items := []catalog.MenuItem{
		{ID: "lf-01", Name: "Classic Cheesy Fries", Price: decimal.RequireFromString("8.99")},
		{ID: "lf-02", Name: "Bacon Ranch Fries", Price: decimal.RequireFromString("10.99")},
	}
	require.NoError(t, repo.Replace(ctx, items))

	got, err := repo.GetByID(ctx, "lf-02")
	require.NoError(t, err)
	assert.Equal(t, "Bacon Ranch Fries", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("10.99")))
}

func TestCatalogRepository_DailySpecialRoundTrip(t *testing.T) {
	repo := NewCatalogRepository(memkv.New())
	ctx := context.Background()

	require.NoError(t, repo.SetDailySpecial(ctx, "lf-02"))
	id, err := repo.DailySpecialID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lf-02", id)
}

// --- Users ---

func TestUserRepository_FindByEmailCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(memkv.New())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &user.User{ID: "u1", Email: "Pat@Example.com"}))

	got, err := repo.FindByEmail(ctx, "pat@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_UpdatePersists(t *testing.T) {
	repo := NewUserRepository(memkv.New())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &user.User{ID: "u1", SpudPoints: 50}))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	u.SpudPoints = 120
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 120, got.SpudPoints)
}

// --- Orders ---

func newOrder(id, userID string, createdAt time.Time) *order.Order {
	return &order.Order{
		ID:        id,
		UserID:    userID,
		Status:    order.StatusConfirmed,
		Type:      order.Pickup,
		CreatedAt: createdAt,
	}
}

func TestOrderRepository_ListByUserNewestFirst(t *testing.T) {
	repo := NewOrderRepository(memkv.New())
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newOrder("o1", "u1", base)))
	require.NoError(t, repo.Create(ctx, newOrder("o2", "u1", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newOrder("o3", "u2", base.Add(2*time.Hour))))

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "o2", mine[0].ID)
	assert.Equal(t, "o1", mine[1].ID)
}

func TestOrderRepository_GuestHistoryEmpty(t *testing.T) {
	repo := NewOrderRepository(memkv.New())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newOrder("o1", order.GuestUserID, time.Now())))

	mine, err := repo.ListByUser(ctx, order.GuestUserID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// The order itself is persisted and reachable by id.
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderRepository(memkv.New())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newOrder("o1", "u1", time.Now())))
	require.NoError(t, repo.UpdateStatus(ctx, "o1", order.StatusPreparing))

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, got.Status)

	require.ErrorIs(t, repo.UpdateStatus(ctx, "missing", order.StatusPreparing), order.ErrNotFound)
}

// --- Promos ---

func TestPromoRepository_FindByCode(t *testing.T) {
	repo := NewPromoRepository(memkv.New())
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, []promo.Code{
		{Code: "SAVE10", DiscountPercentage: decimal.NewFromInt(10), Active: true},
		{Code: "OLDCODE", DiscountPercentage: decimal.NewFromInt(50), Active: false},
	}))

	got, err := repo.FindByCode(ctx, "save10")
	require.NoError(t, err)
	assert.True(t, got.DiscountPercentage.Equal(decimal.NewFromInt(10)))

	_, err = repo.FindByCode(ctx, "OLDCODE")
	require.ErrorIs(t, err, promo.ErrInvalidCode)
}

// --- Carts ---

func TestCartRepository_MissingKeyIsEmptyCart(t *testing.T) {
	repo := NewCartRepository(memkv.New())

	c, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestCartRepository_RoundTrip(t *testing.T) {
	repo := NewCartRepository(memkv.New())
	ctx := context.Background()

	var c cart.Cart
	c.Add(catalog.MenuItem{ID: "lf-01", Price: decimal.RequireFromString("8.99")}, 2, nil)
	require.NoError(t, repo.Put(ctx, "u1", &c))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 2, got.Lines[0].Quantity)

	// Owners are isolated.
	other, err := repo.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}

func TestCartRepository_EmptyCartClearsKey(t *testing.T) {
	repo := NewCartRepository(memkv.New())
	ctx := context.Background()

	var c cart.Cart
	c.Add(catalog.MenuItem{ID: "lf-01", Price: decimal.RequireFromString("8.99")}, 1, nil)
	require.NoError(t, repo.Put(ctx, "u1", &c))

	c.Clear()
	require.NoError(t, repo.Put(ctx, "u1", &c))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}
