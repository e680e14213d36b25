package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₱0.00"},
		{"499.9", "₱499.90"},
		{"12345.5", "₱12,345.50"},
		{"1234567.891", "₱1,234,567.89"},
		{"-10", "₱0.00"},
		{"0.005", "₱0.01"},
		{"99999999999999999.99", "₱99,999,999,999,999,999.99"},
		{"123456789012345678901.5", "₱123,456,789,012,345,678,901.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Price(decimal.RequireFromString(tc.in), "₱"), tc.in)
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "January 10, 2025", Date("2025-01-10"))
	assert.Equal(t, "March 3, 2024", Date("2024-03-03 14:22:01"))
	assert.Equal(t, "March 3, 2024", Date("2024-03-03T14:22:01Z"))
	assert.Equal(t, "March 3, 2024", Date("Sun, 03 Mar 2024 14:22:01 GMT"))
	assert.Equal(t, "someday", Date("someday"))
}

func TestMarkdownSanitizes(t *testing.T) {
	out := string(Markdown("**Save 20%** on cases\n\n<script>alert(1)</script>"))

	assert.Contains(t, out, "<strong>Save 20%</strong>")
	assert.NotContains(t, out, "<script>")
}
