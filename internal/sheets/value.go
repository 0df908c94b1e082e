package sheets

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// blankMarkers are cell contents that mean "no value". They show up when a
// sheet was last saved by a tool that spells missing cells out.
var blankMarkers = map[string]struct{}{
	"nan":  {},
	"none": {},
	"null": {},
	"nat":  {},
	"<na>": {},
}

// IsBlank reports whether a cell holds no value
func IsBlank(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	_, ok := blankMarkers[strings.ToLower(v)]
	return ok
}

// ParseInt reads an integer cell. Integral float text such as "3.0" is
// accepted because numeric cells are often stored as floats.
func ParseInt(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= float64(math.MaxInt64) || f <= float64(math.MinInt64) {
		return 0, false
	}
	return int(f), true
}

// ParseFloat reads decimal text held in memory, written either plainly
// ("1234.56") or with Spanish grouping ("1.234,56"). A comma is always the decimal mark and
// turns every dot into a thousands separator. Without a comma, several dots
// are thousands separators and a single dot is the decimal mark.
func ParseFloat(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, "$", "")
	v = strings.Join(strings.Fields(v), "")
	if v == "" {
		return 0, false
	}

	switch {
	case strings.Contains(v, ","):
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	case strings.Count(v, ".") > 1:
		v = strings.ReplaceAll(v, ".", "")
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseLocaleFloat reads decimal text typed into a spreadsheet cell, where a
// dot always groups thousands and a comma is the decimal mark. "$ 15.000"
// is 15000 and "1.234,56" is 1234.56.
func ParseLocaleFloat(v string) (float64, bool) {
	v = strings.ReplaceAll(strings.TrimSpace(v), "$", "")
	v = strings.Join(strings.Fields(v), "")
	if v == "" {
		return 0, false
	}
	v = strings.ReplaceAll(v, ".", "")
	v = strings.ReplaceAll(v, ",", ".")

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOrZero parses v and substitutes 0 for anything unreadable
func FloatOrZero(v string) float64 {
	f, ok := ParseFloat(v)
	if !ok {
		return 0
	}
	return f
}

// FormatFloat renders f the way numeric cells are stored
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatInt renders an identifier cell
func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// Fold lowercases v, strips diacritics and collapses runs of whitespace so
// that "  José   PÉREZ" and "jose perez" compare equal.
func Fold(v string) string {
	if v == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, v)
	if err != nil {
		folded = v
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
