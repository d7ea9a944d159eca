package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"1234.56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"R$1234,56", 1234.56},
		{"r$ 150,00", 150},
		{"-1.500,75", -1500.75},
		{"- R$ 32,90", -32.9},
		{"+250,00", 250},
		{"1.234", 1234},
		{"1.234.567", 1234567},
		{"1,234.56", 1234.56},
		{"12.5", 12.5},
		{"0,99", 0.99},
		{"2500", 2500},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.InDelta(t, tt.want, got, 0.0001, "input %q", tt.in)
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "R$", "abc", "12,34,56", "--10"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseDateSeparatorsAgree(t *testing.T) {
	slash, ok := ParseDate("20/12/2025")
	require.True(t, ok)
	dash, ok := ParseDate("20-12-2025")
	require.True(t, ok)
	assert.True(t, slash.Equal(dash))
	assert.Equal(t, "20/12/2025", FormatDate(slash))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string // dd/mm/yyyy
	}{
		{"05/01/2024", "05/01/2024"},
		{"5/1/2024", "05/01/2024"},
		{"05-01-24", "05/01/2024"},
		{"31/12/99", "31/12/2099"},
		{"2025-12-20", "20/12/2025"},
		{"2025-12-20T14:03:00", "20/12/2025"},
		{"12 mar 2025", "12/03/2025"},
		{"12 março 2025", "12/03/2025"},
		{"12 de março de 2025", "12/03/2025"},
		{"07 NOV 2025", "07/11/2025"},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		require.True(t, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, FormatDate(got), "input %q", tt.in)
	}
}

func TestParseDateNoYearDefaultsToCurrent(t *testing.T) {
	got, ok := ParseDate("15 jan")
	require.True(t, ok)
	assert.Equal(t, time.Now().Year(), got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "hello", "32/01/2024", "29/02/2023", "00/10/2024", "15/13/2024", "12 xyz 2024"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "150.00", FormatAmount(150))
	assert.Equal(t, "1234.56", FormatAmount(1234.56))
	assert.Equal(t, "0.10", FormatAmount(0.1))
}

func TestFromSerial(t *testing.T) {
	// 45658 is 01/01/2025 in the 1900 serial system.
	got := FromSerial(45658)
	assert.Equal(t, "01/01/2025", FormatDate(got))

	// Fractional part carries the time of day.
	withTime := FromSerial(45658.5)
	assert.Equal(t, 12, withTime.Hour())
}
