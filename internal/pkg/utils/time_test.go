package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Barbearia Demo", "barbearia-demo"},
		{"punctuation collapses", "Joe's Barber & Shop", "joe-s-barber-shop"},
		{"surrounding noise trimmed", "  --Hello--  ", "hello"},
		{"digits survive", "Studio 54", "studio-54"},
		{"non-ascii letters dropped", "Caféé", "caf"},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GenerateSlug(tc.input))
		})
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-202406-0001", GenerateInvoiceNumber(at, 1))
	assert.Equal(t, "INV-202406-0042", GenerateInvoiceNumber(at, 42))
}

func TestParseClockMinutes(t *testing.T) {
	minutes, err := ParseClockMinutes("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = ParseClockMinutes("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, minutes)

	minutes, err = ParseClockMinutes("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 1439, minutes)

	_, err = ParseClockMinutes("9h30")
	assert.Error(t, err)
}

func TestFormatClockMinutes(t *testing.T) {
	assert.Equal(t, "09:30", FormatClockMinutes(570))
	assert.Equal(t, "00:00", FormatClockMinutes(0))
	assert.Equal(t, "23:59", FormatClockMinutes(1439))
}

func TestWeekdayKey(t *testing.T) {
	// 2024-06-03 was a Monday.
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	expected := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for i, key := range expected {
		assert.Equal(t, key, WeekdayKey(day.AddDate(0, 0, i)))
	}
}

func TestTruncateToDay(t *testing.T) {
	at := time.Date(2024, 6, 15, 18, 45, 12, 999, time.UTC)
	truncated := TruncateToDay(at)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), truncated)
}
