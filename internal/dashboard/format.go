// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package dashboard

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatMoney renders an amount as $1,234.56.
func formatMoney(v float64) string {
	if v < 0 {
		return "-$" + printer.Sprintf("%.2f", -v)
	}
	return "$" + printer.Sprintf("%.2f", v)
}

// formatCount renders a whole number with thousands separators.
func formatCount(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// formatDecimal renders a number with two decimals and thousands separators.
func formatDecimal(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// formatPercent renders a share with two decimals.
func formatPercent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
