package record

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"idms/internal/fields"
)

// currencyPrefix is prepended to numeric currency values. The backend stores
// plain numbers; the prefix is presentation only.
const currencyPrefix = "₹"

var currencyPrinter = message.NewPrinter(language.English)

// StatusLevel classifies a status value into one of four badge levels. The
// vocabulary is shared across all modules regardless of each module's own
// status enum; values outside it (e.g. "Suspended", "In Progress") fall
// through to LevelDefault rather than being guessed per module.
type StatusLevel int

const (
	LevelDefault StatusLevel = iota
	LevelPositive
	LevelWarning
	LevelNegative
)

// Status returns the badge level for a status value, matched
// case-insensitively against the fixed vocabulary.
func Status(value string) StatusLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "paid", "valid":
		return LevelPositive
	case "pending":
		return LevelWarning
	case "overdue", "expired":
		return LevelNegative
	default:
		return LevelDefault
	}
}

// FormatValue renders a record attribute for the detail view according to
// its view descriptor type. A missing or nil value always renders "-".
func FormatValue(v any, t fields.ViewFieldType) string {
	if v == nil {
		return "-"
	}
	if s, ok := v.(string); ok && s == "" {
		return "-"
	}
	switch t {
	case fields.ViewDate:
		iso, ok := NormalizeDate(v)
		if !ok {
			return "-"
		}
		parsed, err := time.Parse(isoDate, iso)
		if err != nil {
			return "-"
		}
		return parsed.Format("02 Jan 2006")
	case fields.ViewCurrency:
		if n, ok := asNumber(v); ok {
			return FormatCurrency(n)
		}
		return Stringify(v)
	case fields.ViewPercentage:
		if n, ok := asNumber(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64) + "%"
		}
		return Stringify(v)
	default:
		// text, number, status and anything unrecognized render verbatim;
		// status coloring is the renderer's concern, not the formatter's.
		return Stringify(v)
	}
}

// FormatCurrency renders an amount with the currency prefix and grouped
// thousands, always two decimal places.
func FormatCurrency(n float64) string {
	return currencyPrefix + currencyPrinter.Sprintf("%.2f", n)
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return n, err == nil
	default:
		return 0, false
	}
}
