package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"currex/internal/domain"
)

// defaultCatalog is the built-in world currency set, used when config.yaml
// carries no currencies section. Rates are rough startup values relative to
// USD; the refresher replaces them on its first successful cycle.
var defaultCatalog = map[string]CurrencyEntry{
	"USD": {Rate: 1.0, Symbol: "$", Name: "United States Dollar"},
	"EUR": {Rate: 0.93, Symbol: "€", Name: "Euro"},
	"GBP": {Rate: 0.79, Symbol: "£", Name: "British Pound Sterling"},
	"JPY": {Rate: 147.50, Symbol: "¥", Name: "Japanese Yen"},
	"CAD": {Rate: 1.35, Symbol: "C$", Name: "Canadian Dollar"},
	"AUD": {Rate: 1.52, Symbol: "A$", Name: "Australian Dollar"},
	"CHF": {Rate: 0.91, Symbol: "Fr.", Name: "Swiss Franc"},
	"CNY": {Rate: 7.15, Symbol: "¥", Name: "Chinese Yuan"},
	"INR": {Rate: 83.20, Symbol: "₹", Name: "Indian Rupee"},
	"BRL": {Rate: 4.95, Symbol: "R$", Name: "Brazilian Real"},
	"RUB": {Rate: 91.50, Symbol: "₽", Name: "Russian Ruble"},
	"KRW": {Rate: 1300.50, Symbol: "₩", Name: "South Korean Won"},
	"SGD": {Rate: 1.35, Symbol: "S$", Name: "Singapore Dollar"},
	"MXN": {Rate: 17.50, Symbol: "$", Name: "Mexican Peso"},
	"SAR": {Rate: 3.75, Symbol: "﷼", Name: "Saudi Riyal"},
	"AED": {Rate: 3.67, Symbol: "د.إ", Name: "UAE Dirham"},
	"TRY": {Rate: 30.50, Symbol: "₺", Name: "Turkish Lira"},
	"ZAR": {Rate: 18.50, Symbol: "R", Name: "South African Rand"},
}

// Catalog resolves and validates the static currency set the service starts
// with. Symbol and name may be empty, the rate must be a positive finite
// number.
func (c *AppConfig) Catalog() ([]domain.Currency, error) {
	src := c.Currencies
	if len(src) == 0 {
		src = defaultCatalog
	}

	out := make([]domain.Currency, 0, len(src))
	for rawCode, entry := range src {
		code := strings.ToUpper(strings.TrimSpace(rawCode))
		if code == "" {
			return nil, fmt.Errorf("currency with empty code in catalog")
		}
		if entry.Rate <= 0 || math.IsNaN(entry.Rate) || math.IsInf(entry.Rate, 0) {
			return nil, fmt.Errorf("currency %s: rate must be a positive finite number, got %v", code, entry.Rate)
		}
		out = append(out, domain.Currency{
			Code:   code,
			Name:   entry.Name,
			Symbol: entry.Symbol,
			Rate:   entry.Rate,
		})
	}

	slices.SortFunc(out, func(a, b domain.Currency) int {
		return strings.Compare(a.Code, b.Code)
	})
	return out, nil
}
