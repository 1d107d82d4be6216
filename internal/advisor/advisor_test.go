package advisor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/matching"
)

func floatPtr(f float64) *float64 { return &f }

func testRecords() []catalog.Record {
	return []catalog.Record{
		{Name: "Cow Manure", BestUse: "Compost pit", CompostTime: "4-6 weeks", Nutrient: "Nitrogen-rich", Tips: "Mix with dry matter"},
		{Name: "Banana Peels", BestUse: "Direct mulch", CompostTime: "2-3 weeks", Nutrient: "Potassium-rich", YieldPct: floatPtr(60)},
		{Name: "Rice Husk", BestUse: "Mulching", CompostTime: "8-10 weeks", Nutrient: "Carbon-rich"},
	}
}

func newTestService(t *testing.T) *advisor.Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	repo.EXPECT().LoadAll(gomock.Any()).Return(testRecords(), nil)

	cat := catalog.NewService(repo)
	require.NoError(t, cat.Load(context.Background()))

	return advisor.NewService(cat, matching.DefaultScoreCutoff)
}

func TestRecommend_ExplicitSelectionWins(t *testing.T) {
	svc := newTestService(t)

	// Free text is deliberately garbage: an explicit pick must never be
	// second-guessed by the scorer.
	rec, err := svc.Recommend(context.Background(), advisor.RecommendParams{
		SelectedName: "Cow Manure",
		FreeText:     "xyzxyz",
	})
	require.NoError(t, err)

	assert.Equal(t, advisor.OutcomeMatched, rec.Kind)
	require.NotNil(t, rec.Record)
	assert.Equal(t, "Cow Manure", rec.Record.Name)
	assert.Equal(t, 100.0, rec.Score)
	assert.Nil(t, rec.Estimate)
}

func TestRecommend_SelectionNotInCatalog(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend(context.Background(), advisor.RecommendParams{
		SelectedName: "Moon Dust",
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRecommend_FuzzyMatch(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Recommend(context.Background(), advisor.RecommendParams{
		FreeText: "cow dung",
	})
	require.NoError(t, err)

	assert.Equal(t, advisor.OutcomeMatched, rec.Kind)
	require.NotNil(t, rec.Record)
	assert.Equal(t, "Cow Manure", rec.Record.Name)
	assert.GreaterOrEqual(t, rec.Score, matching.DefaultScoreCutoff)
}

func TestRecommend_Unmatched(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Recommend(context.Background(), advisor.RecommendParams{
		FreeText: "xyzxyz",
	})
	require.NoError(t, err)

	assert.Equal(t, advisor.OutcomeUnmatched, rec.Kind)
	assert.Nil(t, rec.Record)
	assert.Less(t, rec.ClosestScore, matching.DefaultScoreCutoff)
	assert.Len(t, rec.Suggestions, 3)
}

func TestRecommend_EmptyInput(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Recommend(context.Background(), advisor.RecommendParams{
		SelectedName: "",
		FreeText:     "   ",
	})
	require.NoError(t, err)

	assert.Equal(t, advisor.OutcomeEmptyInput, rec.Kind)
	assert.Nil(t, rec.Record)
	assert.Nil(t, rec.Estimate)
}

func TestRecommend_YieldEstimate(t *testing.T) {
	type testCase struct {
		name         string
		selected     string
		quantityKg   float64
		wantYieldPct float64
		wantOutputKg float64
		wantEstimate bool
	}

	tests := []testCase{
		{
			name:         "DefaultYield",
			selected:     "Cow Manure",
			quantityKg:   100.0,
			wantYieldPct: advisor.DefaultYieldPct,
			wantOutputKg: 40.0,
			wantEstimate: true,
		},
		{
			name:         "RecordYield",
			selected:     "Banana Peels",
			quantityKg:   50.0,
			wantYieldPct: 60.0,
			wantOutputKg: 30.0,
			wantEstimate: true,
		},
		{
			name:         "ZeroQuantity",
			selected:     "Cow Manure",
			quantityKg:   0,
			wantEstimate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)

			rec, err := svc.Recommend(context.Background(), advisor.RecommendParams{
				SelectedName: tt.selected,
				QuantityKg:   tt.quantityKg,
			})
			require.NoError(t, err)

			if !tt.wantEstimate {
				assert.Nil(t, rec.Estimate)
				return
			}

			require.NotNil(t, rec.Estimate)
			assert.Equal(t, tt.wantYieldPct, rec.Estimate.YieldPct)
			assert.InDelta(t, tt.wantOutputKg, rec.Estimate.OutputKg, 1e-9)
			assert.NotEmpty(t, rec.Estimate.Note)
		})
	}
}
