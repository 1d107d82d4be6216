// Package report renders a recommendation as a plain-text advice report, the
// format consumed by the download action.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
)

const title = "Farm Waste → Fertilizer Advisor Report"

// Format renders the report text for a matched record. The layout is a stable
// contract: title, generation timestamp, the advice fields, and, when an
// estimate is present, a blank line followed by the quantity figures at two
// decimal places.
func Format(rec *catalog.Record, est *advisor.Estimate, generatedAt time.Time) string {
	lines := []string{
		title,
		"Generated: " + generatedAt.Format("2006-01-02 15:04:05"),
		"",
		"Waste Type: " + rec.Name,
		"Best Use: " + rec.BestUse,
		"Compost Time: " + rec.CompostTime,
		"Nutrient: " + rec.Nutrient,
		"Tips: " + rec.Tips,
	}

	if est != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Input Quantity: %.2f kg", est.QuantityKg),
			fmt.Sprintf("Estimated Compost Output: %.2f kg", est.OutputKg),
		)
	}

	return strings.Join(lines, "\n")
}

// Filename builds the download filename for a waste type, spaces replaced
// with underscores.
func Filename(wasteType string) string {
	return fmt.Sprintf("fert_advice_%s.txt", strings.ReplaceAll(wasteType, " ", "_"))
}
