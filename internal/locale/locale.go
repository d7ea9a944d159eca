// Package locale converts pt-BR formatted currency and date strings into
// canonical values. Statements mix "1.234,56", "1234,56" and "1234.56"
// freely, so separator roles are decided per value.
package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the only currency the system handles.
const CurrencySymbol = "R$"

// ParseAmount converts a locale-formatted amount string to a float64.
// The sign is preserved; callers that carry sign separately take the
// absolute value themselves. Returns an error on unparseable input;
// callers must check before use.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, CurrencySymbol, "")
	s = strings.ReplaceAll(s, "r$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	neg := false
	s = strings.TrimPrefix(s, "+")
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, fmt.Errorf("unparseable amount %q", raw)
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// Both present: the separator closest to the end is the decimal
		// one, the other is thousands.
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		// A lone comma is always decimal in pt-BR.
		if strings.Count(s, ",") > 1 {
			return 0, fmt.Errorf("ambiguous amount %q", raw)
		}
		s = strings.Replace(s, ",", ".", 1)
	case hasDot:
		// A lone dot is decimal only when it leaves at most two trailing
		// digits; otherwise it is a thousands separator ("1.234" = 1234).
		last := strings.LastIndex(s, ".")
		if strings.Count(s, ".") == 1 && len(s)-last-1 <= 2 {
			// decimal, keep as-is
		} else {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q", raw)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// FormatAmount renders a value with exactly two decimal places, the
// canonical form used by fingerprints and category mapping keys.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Portuguese month names, lowercase. Both the accented and plain
// spellings are accepted.
var monthNames = map[string]time.Month{
	"jan": time.January, "janeiro": time.January,
	"fev": time.February, "fevereiro": time.February,
	"mar": time.March, "marco": time.March, "março": time.March,
	"abr": time.April, "abril": time.April,
	"mai": time.May, "maio": time.May,
	"jun": time.June, "junho": time.June,
	"jul": time.July, "julho": time.July,
	"ago": time.August, "agosto": time.August,
	"set": time.September, "setembro": time.September,
	"out": time.October, "outubro": time.October,
	"nov": time.November, "novembro": time.November,
	"dez": time.December, "dezembro": time.December,
}

// MonthFromName resolves a 3-letter or full Portuguese month name.
func MonthFromName(name string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

var (
	isoDatePattern     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)
	namedDatePattern   = regexp.MustCompile(`(?i)^(\d{1,2})(?:\s+de)?\s+([a-zà-ú]+)(?:(?:\s+de)?\s+(\d{2,4}))?$`)
)

// ParseDate resolves a day/month/year string to a calendar date.
// Accepts dd/mm/yyyy and dd-mm-yyyy (2- or 4-digit years), Portuguese
// month names ("12 mar 2025", "12 de março de 2025") and an ISO
// YYYY-MM-DD prefix. Returns ok=false on failure, never panics.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return makeDate(year, month, day)
	}

	if m := numericDatePattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return makeDate(ExpandYear(year), month, day)
	}

	if m := namedDatePattern.FindStringSubmatch(s); m != nil {
		month, ok := MonthFromName(m[2])
		if !ok {
			return time.Time{}, false
		}
		day, _ := strconv.Atoi(m[1])
		year := time.Now().Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			year = ExpandYear(year)
		}
		return makeDate(year, int(month), day)
	}

	return time.Time{}, false
}

// ExpandYear maps a 2-digit year into the 2000s; 4-digit years pass through.
func ExpandYear(year int) int {
	if year < 100 {
		return 2000 + year
	}
	return year
}

// makeDate validates the components form a real calendar date.
// time.Date silently normalizes overflow (32/01 -> 01/02), which would
// let garbage through, so the result is checked against the inputs.
func makeDate(year, month, day int) (time.Time, bool) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date in the canonical dd/mm/yyyy display order.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// serialEpoch is the spreadsheet day-zero (the 1900 system, with its
// historical off-by-two already accounted for).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// FromSerial converts a spreadsheet numeric date serial (days since the
// epoch, fractional part is time of day) into a calendar timestamp.
func FromSerial(serial float64) time.Time {
	days := int(serial)
	frac := serial - float64(days)
	secs := int(frac*86400 + 0.5)
	return serialEpoch.AddDate(0, 0, days).Add(time.Duration(secs) * time.Second)
}
