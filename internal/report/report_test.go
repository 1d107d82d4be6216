package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/report"
)

func TestFormat(t *testing.T) {
	rec := &catalog.Record{
		Name:        "Cow Manure",
		BestUse:     "Compost pit",
		CompostTime: "4-6 weeks",
		Nutrient:    "Nitrogen-rich",
		Tips:        "Mix with dry matter",
	}
	generatedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := report.Format(rec, nil, generatedAt)

	want := "Farm Waste → Fertilizer Advisor Report\n" +
		"Generated: 2025-03-14 09:26:53\n" +
		"\n" +
		"Waste Type: Cow Manure\n" +
		"Best Use: Compost pit\n" +
		"Compost Time: 4-6 weeks\n" +
		"Nutrient: Nitrogen-rich\n" +
		"Tips: Mix with dry matter"

	assert.Equal(t, want, got)
}

func TestFormat_WithEstimate(t *testing.T) {
	rec := &catalog.Record{Name: "Rice Husk", BestUse: "Mulching"}
	est := &advisor.Estimate{
		QuantityKg: 100,
		YieldPct:   40,
		OutputKg:   40,
	}
	generatedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := report.Format(rec, est, generatedAt)

	assert.Contains(t, got, "\n\nInput Quantity: 100.00 kg\nEstimated Compost Output: 40.00 kg")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "fert_advice_Cow_Manure.txt", report.Filename("Cow Manure"))
	assert.Equal(t, "fert_advice_Compost.txt", report.Filename("Compost"))
}
