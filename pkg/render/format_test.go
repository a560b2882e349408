package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyGroupsAndRounds(t *testing.T) {
	assert.Equal(t, "₹0", FormatCurrency(0))
	assert.Equal(t, "₹1,234,568", FormatCurrency(1234567.8))
	assert.Equal(t, "₹500", FormatCurrency(499.6))
}

func TestFormatNumberGroupsDigits(t *testing.T) {
	assert.Equal(t, "12,345", FormatNumber(12345))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestFormatSignedPercentAlwaysCarriesSign(t *testing.T) {
	assert.Equal(t, "+12.3%", FormatSignedPercent(12.34))
	assert.Equal(t, "-4.0%", FormatSignedPercent(-4))
	assert.Equal(t, "+0.0%", FormatSignedPercent(0))
}

func TestFormatDaysOfCoverKeepsNullAndZeroApart(t *testing.T) {
	assert.Equal(t, "N/A", FormatDaysOfCover(nil))

	zero := 0.0
	assert.Equal(t, "0 days", FormatDaysOfCover(&zero))

	cover := 3.3
	assert.Equal(t, "3.3 days", FormatDaysOfCover(&cover))
}
