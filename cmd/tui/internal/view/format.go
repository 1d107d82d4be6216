package view

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatScore renders a similarity score without trailing noise.
func FormatScore(score float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", score), ".0")
}

// FormatKg formats a mass in kilograms to two decimal places.
func FormatKg(kg float64) string {
	return fmt.Sprintf("%.2f kg", kg)
}

// FormatYield renders a yield percentage, or a dash when unset.
func FormatYield(pct *float64) string {
	if pct == nil {
		return "-"
	}

	return strconv.FormatFloat(*pct, 'f', -1, 64) + "%"
}
