package render

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a rupee amount with grouped digits and no decimal
// places, e.g. 1234567.8 -> "₹1,234,568".
func FormatCurrency(value float64) string {
	return "₹" + printer.Sprint(number.Decimal(math.Round(value), number.MaxFractionDigits(0)))
}

// FormatNumber renders a count with locale grouping, e.g. 12345 -> "12,345".
func FormatNumber(value float64) string {
	return printer.Sprint(number.Decimal(value))
}

// FormatSignedPercent renders a trend percentage with an explicit sign and
// one decimal place: 12.34 -> "+12.3%", -4 -> "-4.0%".
func FormatSignedPercent(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

// FormatDaysOfCover renders the days-of-cover estimate. A nil value means
// the backend signalled no finite estimate and renders as "N/A"; a literal
// zero renders as "0 days". The two never collapse.
func FormatDaysOfCover(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64) + " days"
}
