package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected *float64
	}{
		{name: "plain number", cell: "19.99", expected: floatPtr(19.99)},
		{name: "dollar sign", cell: "$19.99", expected: floatPtr(19.99)},
		{name: "pound sign", cell: "£45", expected: floatPtr(45)},
		{name: "euro with thousands separator", cell: "€1,299.99", expected: floatPtr(1299.99)},
		{name: "price with trailing text", cell: "19.99 + shipping", expected: floatPtr(19.99)},
		{name: "sub-cent value is rounded", cell: "10.999", expected: floatPtr(11)},
		{name: "blank cell", cell: "", expected: nil},
		{name: "whitespace only", cell: "   ", expected: nil},
		{name: "no digits at all", cell: "call for price", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parsePrice(tt.cell)
			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.InDelta(t, *tt.expected, *result, 0.001)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	assert.Equal(t, floatPtr(19.99), parseDecimal("19.99"))
	assert.Equal(t, floatPtr(20.0), parseDecimal("19.999"))
	assert.Nil(t, parseDecimal("$19.99"))
	assert.Nil(t, parseDecimal("1,299.99"))
	assert.Nil(t, parseDecimal(""))
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		cell     string
		expected *bool
	}{
		{cell: "true", expected: boolPtr(true)},
		{cell: "TRUE", expected: boolPtr(true)},
		{cell: "Yes", expected: boolPtr(true)},
		{cell: "y", expected: boolPtr(true)},
		{cell: "1", expected: boolPtr(true)},
		{cell: "1.0", expected: boolPtr(true)},
		{cell: "false", expected: boolPtr(false)},
		{cell: "No", expected: boolPtr(false)},
		{cell: "n", expected: boolPtr(false)},
		{cell: "0", expected: boolPtr(false)},
		{cell: "0.0", expected: boolPtr(false)},
		{cell: "", expected: nil},
		{cell: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseBool(tt.cell))
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, intPtr(3), parseInt("3"))
	assert.Equal(t, intPtr(3), parseInt("3.0"))
	assert.Equal(t, intPtr(120), parseInt(" 120 "))
	assert.Nil(t, parseInt(""))
	assert.Nil(t, parseInt("three"))
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, floatPtr(4.5), parseRating("4.5"))
	assert.Equal(t, floatPtr(4.3), parseRating("4.27"))
	assert.Nil(t, parseRating("n/a"))
	assert.Nil(t, parseRating(""))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected time.Time
	}{
		{name: "iso date", cell: "2025-03-14", expected: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "slash date", cell: "14/03/2025", expected: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "iso with time", cell: "2025-03-14 09:30:00", expected: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{name: "blank", cell: "", expected: time.Time{}},
		{name: "garbage", cell: "last tuesday", expected: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(parseDate(tt.cell)))
		})
	}
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
