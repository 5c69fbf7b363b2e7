package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// englishDigits formats every numeric value: the dashboard shows Latin
// numerals even in Arabic.
var englishDigits = message.NewPrinter(language.English)

// CurrencyLabel returns the EGP label for the locale.
func CurrencyLabel(l Locale) string {
	if l == Arabic {
		return "ج.م"
	}
	return "EGP"
}

// FormatCurrency renders an amount with two decimals, thousand
// separators and the locale's currency label.
func FormatCurrency(l Locale, amount float64) string {
	return englishDigits.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)) + " " + CurrencyLabel(l)
}

// FormatNumber renders a plain number with thousand separators.
func FormatNumber(n float64) string {
	return englishDigits.Sprint(number.Decimal(n, number.MaxFractionDigits(2)))
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(p float64) string {
	return englishDigits.Sprint(number.Decimal(p,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	)) + "%"
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatDateString renders a content-API date field ("2006-01-02" or
// RFC 3339). Unparseable input passes through unchanged.
func FormatDateString(l Locale, s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return s
		}
	}
	return FormatDate(l, t)
}

// FormatDate renders a date with localized month names and Latin digits.
func FormatDate(l Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if l == Arabic {
		return englishDigits.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
	}
	return t.Format("2 January 2006")
}
