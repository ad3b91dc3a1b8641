package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/repository"
	"github.com/xenking/spud-shack/internal/storage/memkv"
)

func testStores() Stores {
	store := memkv.New()
	return Stores{
		Catalog: repository.NewCatalogRepository(store),
		Promos:  repository.NewPromoRepository(store),
		Users:   repository.NewUserRepository(store),
	}
}

func TestEnsure_SeedsEmptyCollections(t *testing.T) {
	st := testStores()
	ctx := context.Background()

	require.NoError(t, Ensure(ctx, st, "admin@potato.com", "hash"))

	items, err := st.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(Menu()))

	special, err := st.Catalog.DailySpecialID(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultDailySpecialID, special)

	promos, err := st.Promos.List(ctx)
	require.NoError(t, err)
	assert.Len(t, promos, len(Promos()))

	admin, err := st.Users.FindByEmail(ctx, "admin@potato.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", admin.CredentialHash)
	assert.Equal(t, 1000, admin.SpudPoints)
}

func TestEnsure_LeavesExistingDataAlone(t *testing.T) {
	st := testStores()
	ctx := context.Background()

	custom := []catalog.MenuItem{{ID: "x-01", Name: "Off-Menu Special"}}
	require.NoError(t, st.Catalog.Replace(ctx, custom))

	require.NoError(t, Ensure(ctx, st, "admin@potato.com", "hash"))

	items, err := st.Catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "x-01", items[0].ID)
}

func TestMenu_SpecialPriceMarkdown(t *testing.T) {
	for _, item := range Menu() {
		if item.ID == DefaultDailySpecialID {
			special := catalog.SpecialPrice(item)
			assert.True(t, special.LessThan(item.Price),
				"special %s not below %s", special, item.Price)
		}
	}
}
