package quotes

import "strings"

// NormalizeSymbol trim and upper case a ticker symbol
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ParseTickers parse comma separated ticker list, empty entries are dropped
func ParseTickers(input string) []string {
	parts := strings.Split(input, ",")
	tickers := make([]string, 0, len(parts))
	for _, part := range parts {
		symbol := NormalizeSymbol(part)
		if symbol == "" {
			continue
		}

		tickers = append(tickers, symbol)
	}

	return tickers
}

// NormalizeTickers normalize every symbol of list, empty entries are dropped
func NormalizeTickers(symbols []string) []string {
	return ParseTickers(strings.Join(symbols, ","))
}
