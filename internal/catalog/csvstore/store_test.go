package csvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog/csvstore"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "waste_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestStore_LoadAll(t *testing.T) {
	path := writeDataset(t, `Waste Type,Best Use,Compost Time,Nutrient,Tips,Yield_pct
Cow Manure,Compost pit,4-6 weeks,Nitrogen-rich,Mix with dry matter,55
Banana Peels,Direct mulch,2-3 weeks,Potassium-rich,Chop before use,
Rice Husk,Mulching,8-10 weeks,Carbon-rich,Soak first,not-a-number
`)

	store := csvstore.New(path)

	records, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Cow Manure", records[0].Name)
	assert.Equal(t, "Compost pit", records[0].BestUse)
	require.NotNil(t, records[0].YieldPct)
	assert.Equal(t, 55.0, *records[0].YieldPct)

	// Empty and unparseable yields mean "not set", never an error.
	assert.Nil(t, records[1].YieldPct)
	assert.Nil(t, records[2].YieldPct)
}

func TestStore_LoadAll_WithoutYieldColumn(t *testing.T) {
	path := writeDataset(t, `Waste Type,Best Use,Compost Time,Nutrient,Tips
Cow Manure,Compost pit,4-6 weeks,Nitrogen-rich,Mix with dry matter
`)

	store := csvstore.New(path)

	records, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].YieldPct)
}

func TestStore_LoadAll_Missing(t *testing.T) {
	store := csvstore.New(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := store.LoadAll(context.Background())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStore_LoadAll_NoHeader(t *testing.T) {
	path := writeDataset(t, "a,b,c\n1,2,3\n")
	store := csvstore.New(path)

	_, err := store.LoadAll(context.Background())
	assert.Error(t, err)
}

func TestStore_AppendRoundTrip(t *testing.T) {
	path := writeDataset(t, `Waste Type,Best Use,Compost Time,Nutrient,Tips,Yield_pct
Cow Manure,Compost pit,4-6 weeks,Nitrogen-rich,Mix with dry matter,55
`)

	store := csvstore.New(path)
	yield := 35.0

	err := store.Append(context.Background(), catalog.Record{
		Name:        "Rice Husk",
		BestUse:     "Mulching",
		CompostTime: "8-10 weeks",
		Nutrient:    "Carbon-rich",
		Tips:        "Soak first",
		YieldPct:    &yield,
	})
	require.NoError(t, err)

	records, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[1]
	assert.Equal(t, "Rice Husk", got.Name)
	assert.Equal(t, "Mulching", got.BestUse)
	assert.Equal(t, "8-10 weeks", got.CompostTime)
	assert.Equal(t, "Carbon-rich", got.Nutrient)
	assert.Equal(t, "Soak first", got.Tips)
	require.NotNil(t, got.YieldPct)
	assert.Equal(t, 35.0, *got.YieldPct)

	// The first record survives the rewrite untouched.
	assert.Equal(t, "Cow Manure", records[0].Name)
	require.NotNil(t, records[0].YieldPct)
	assert.Equal(t, 55.0, *records[0].YieldPct)
}

func TestStore_AppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waste_data.csv")
	store := csvstore.New(path)

	err := store.Append(context.Background(), catalog.Record{Name: "Coffee Grounds"})
	require.NoError(t, err)

	records, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Coffee Grounds", records[0].Name)
}
