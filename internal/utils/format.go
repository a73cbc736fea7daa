package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var koPrinter = message.NewPrinter(language.Korean)

var currencySymbols = map[domain.Currency]string{
	domain.KRW: "₩",
	domain.USD: "$",
	domain.EUR: "€",
	domain.JPY: "¥",
}

// currencyPrecision is the number of minor digits shown per currency: 0 or 2.
var currencyPrecision = map[domain.Currency]int32{
	domain.KRW: 0,
	domain.JPY: 0,
	domain.USD: 2,
	domain.EUR: 2,
}

// FormatNumber groups thousands the Korean way.
// Example: 1234567 -> "1,234,567"
func FormatNumber(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return koPrinter.Sprintf("%d", d.IntPart())
	}
	return koPrinter.Sprintf("%v", d.InexactFloat64())
}

// FormatCurrency formats an amount with its currency symbol and precision.
// Example: 1450000 KRW -> "₩1,450,000"
func FormatCurrency(amount decimal.Decimal, currency domain.Currency) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = string(currency) + " "
	}
	precision := currencyPrecision[currency]

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	rounded := amount.Round(precision)
	if precision == 0 {
		return sign + symbol + koPrinter.Sprintf("%d", rounded.IntPart())
	}
	return sign + symbol + koPrinter.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatWon formats a KRW amount.
func FormatWon(amount decimal.Decimal) string {
	return FormatCurrency(amount, domain.KRW)
}

// FormatDate renders an ISO calendar date in Korean long form.
// Example: "2024-02-16" -> "2024년 2월 16일". Unparseable input is returned as is.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := parseISODate(iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

func parseISODate(s string) (time.Time, error) {
	if len(s) > len("2006-01-02") && strings.Contains(s, "T") {
		return time.Parse(time.RFC3339, s)
	}
	return time.Parse("2006-01-02", s)
}
