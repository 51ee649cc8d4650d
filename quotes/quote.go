package quotes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// displayCurrency is the currency every quote page of the board is priced in
const displayCurrency = "USD"

// Quote price snapshot of a ticker
type Quote struct {
	Price   float64 `json:"price"`
	Change  float64 `json:"change"`
	Percent float64 `json:"percent"`
}

// Positive reports whether the quote did not lose value
func (q Quote) Positive() bool {
	return q.Change >= 0
}

// Display format quote as "$1,234.56 (+1.23, +0.10%)"
func (q Quote) Display() string {
	return fmt.Sprintf("%s (%+.2f, %+.2f%%)", formatPrice(q.Price), q.Change, q.Percent)
}

// String implements fmt.Stringer
func (q Quote) String() string {
	return q.Display()
}

// formatPrice rounds like the %.2f verbs of change and percent before handing cents to go-money
func formatPrice(price float64) string {
	rounded := strconv.FormatFloat(price, 'f', 2, 64)
	cents, err := strconv.ParseInt(strings.Replace(rounded, ".", "", 1), 10, 64)
	if err != nil {
		return "$" + rounded
	}

	return money.New(cents, displayCurrency).Display()
}

// Row a fetched ticker ready to be drawn
type Row struct {
	Symbol   string `json:"symbol"`
	Text     string `json:"text"`
	Positive bool   `json:"positive"`
	Quote    Quote  `json:"quote"`
}

// NewRow create row from symbol and quote
func NewRow(symbol string, quote *Quote) Row {
	return Row{
		Symbol:   symbol,
		Text:     quote.Display(),
		Positive: quote.Positive(),
		Quote:    *quote,
	}
}
