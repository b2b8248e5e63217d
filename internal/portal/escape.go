// Package portal builds the per-portal XML export feeds. Each generator is a
// pure function over an already-filtered property list; callers are
// responsible for restricting input to active listings flagged for the
// target portal.
package portal

import (
	"strconv"
	"strings"
)

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape XML-escapes the five special characters in a free-text field.
// Applied exactly once per field; numeric fields are never escaped.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return xmlReplacer.Replace(s)
}

// fnum renders a numeric field as-is, without trailing zeros
func fnum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
