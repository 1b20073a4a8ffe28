package locale

import (
	"strings"

	"field_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var tags = map[entities.Language]language.Tag{
	entities.LanguageEN: language.AmericanEnglish,
	entities.LanguagePT: language.BrazilianPortuguese,
	entities.LanguageES: language.LatinAmericanSpanish,
}

// Tag returns the display locale for a company language. Unknown values
// fall back to English.
func Tag(lang entities.Language) language.Tag {
	if t, ok := tags[lang]; ok {
		return t
	}
	return language.AmericanEnglish
}

// FormatNumber renders amount with exactly two decimals using the
// locale's separators.
func FormatNumber(lang entities.Language, amount decimal.Decimal) string {
	p := message.NewPrinter(Tag(lang))
	return p.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}

// FormatMoney prefixes the formatted number with the currency symbol.
// An unknown currency code is printed as-is.
func FormatMoney(lang entities.Language, amount decimal.Decimal, code string) string {
	num := FormatNumber(lang, amount)
	symbol := strings.ToUpper(strings.TrimSpace(code))
	if unit, err := currency.ParseISO(symbol); err == nil {
		symbol = message.NewPrinter(Tag(lang)).Sprint(currency.Symbol(unit))
	}
	if symbol == "" {
		return num
	}
	if lang == entities.LanguageEN {
		return symbol + num
	}
	return symbol + " " + num
}
