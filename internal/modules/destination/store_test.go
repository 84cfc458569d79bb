package destination

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/testutil"
)

func TestStoreListAndSearch(t *testing.T) {
	db := testutil.DB(t, "travel_plans", "destinations")
	store := NewStore(db)
	ctx := context.Background()

	for _, d := range []Destination{
		{ID: "tokyo-1", Name: "Tokyo", Country: "Japon", City: ptr("Tokyo")},
		{ID: "paris-1", Name: "Paris", Country: "France", City: ptr("Paris")},
	} {
		d := d
		require.NoError(t, store.Upsert(ctx, &d))
	}
	require.NoError(t, store.Upsert(ctx, &Destination{ID: "paris-1", Name: "Paris", Country: "France", Description: ptr("Ville lumière")}))

	all, err := store.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Paris", all[0].Name)
	require.NotNil(t, all[0].Description)

	byCountry, err := store.List(ctx, ListFilter{Country: "jap"})
	require.NoError(t, err)
	require.Len(t, byCountry, 1)
	assert.Equal(t, "tokyo-1", byCountry[0].ID)

	found, err := store.Search(ctx, "FRAN", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "paris-1", found[0].ID)

	_, err = store.Get(ctx, "nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}
