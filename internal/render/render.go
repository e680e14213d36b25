// Package render holds the formatting helpers shared by page templates.
package render

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
)

// Price formats amount as symbol + grouped thousands + two decimals.
// Negative amounts render as zero.
func Price(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	rounded := amount.Round(2)
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).StringFixed(2)
	return symbol + humanize.BigComma(whole.BigInt()) + strings.TrimPrefix(cents, "0")
}

// dateLayouts are the shapes the backend has been seen to send.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Date renders s as "January 2, 2006"; unparseable input is returned as is.
func Date(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}

var (
	markdown = goldmark.New()
	policy   = bluemonday.UGCPolicy()
)

// Markdown renders a blog text section to sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
