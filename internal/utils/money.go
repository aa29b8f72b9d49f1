package utils

import (
	"fmt"
	"math"
)

// Round2 rounds an amount to two decimal places (rupee paise precision).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRupees renders an amount with the currency sign, e.g. "₹590.00".
func FormatRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%.2f", sign, amount)
}
