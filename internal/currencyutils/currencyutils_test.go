package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "8112.00", FormatAmount(8112))
	assert.Equal(t, "-188.00", FormatAmount(-188))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "2877.84", FormatAmount(2877.8355))
}

func TestFormatAUD(t *testing.T) {
	assert.Equal(t, "$27500.00", FormatAUD(27500))
	assert.Equal(t, "-$188.00", FormatAUD(-188))
	assert.Equal(t, "$0.00", FormatAUD(0))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "2.50%", FormatRate(0.025))
	assert.Equal(t, "37.00%", FormatRate(0.37))
	assert.Equal(t, "0.00%", FormatRate(0))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1234.56", 1234.56},
		{"$1,234.56", 1234.56},
		{"-$188.00", -188},
		{" 480000 ", 480000},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		assert.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}

	_, err := ParseAmount("not a number")
	assert.Error(t, err)
}
