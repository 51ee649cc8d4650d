package sources

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/nzai/tickerboard/constants"
	"github.com/nzai/tickerboard/quotes"
	"go.uber.org/zap"
)

const (
	fieldPrice         = "regularMarketPrice"
	fieldChange        = "regularMarketChange"
	fieldChangePercent = "regularMarketChangePercent"
)

// YahooFinance scrape quotes from yahoo finance quote page
type YahooFinance struct {
	baseURL    string
	httpClient HTTPClient
	header     http.Header
}

// NewYahooFinance create yahoo finance source
func NewYahooFinance(options ...YahooFinanceOption) *YahooFinance {
	yahoo := &YahooFinance{
		baseURL:    constants.YahooBaseURL,
		httpClient: http.DefaultClient,
		header:     defaultHeader(),
	}

	for _, option := range options {
		option(yahoo)
	}

	return yahoo
}

// QuoteURL return quote page url of symbol
func (y YahooFinance) QuoteURL(symbol string) string {
	return fmt.Sprintf("%s/quote/%s", y.baseURL, url.PathEscape(symbol))
}

// Fetch fetch the quote page of symbol and parse price, change and percent change
func (y YahooFinance) Fetch(ctx context.Context, symbol string) (*quotes.Quote, error) {
	pageURL := y.QuoteURL(symbol)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	request.Header = y.header.Clone()

	response, err := y.httpClient.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		zap.L().Warn("request quote page failed", zap.Error(err), zap.String("url", pageURL))
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Symbol: symbol,
			Err:    fmt.Errorf("%w: response status code %d", ErrNetwork, response.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("%w: read body: %v", ErrNetwork, err)}
	}

	return ParseQuote(doc, symbol)
}

// ParseQuote extract quote of symbol from a yahoo finance quote page
func ParseQuote(doc *goquery.Document, symbol string) (*quotes.Quote, error) {
	price, err := parseField(doc, symbol, fieldPrice)
	if err != nil {
		return nil, err
	}

	change, err := parseField(doc, symbol, fieldChange)
	if err != nil {
		return nil, err
	}

	percent, err := parseField(doc, symbol, fieldChangePercent)
	if err != nil {
		return nil, err
	}

	return &quotes.Quote{Price: price, Change: change, Percent: percent}, nil
}

// parseField prefer the streamer bound to symbol, pages also carry streamers of other tickers
func parseField(doc *goquery.Document, symbol, field string) (float64, error) {
	var selection *goquery.Selection
	if quotable(symbol) {
		selection = doc.Find(`fin-streamer[data-field="` + field + `"][data-symbol="` + symbol + `"]`).First()
	}

	if selection == nil || selection.Length() == 0 {
		selection = doc.Find(`fin-streamer[data-field="` + field + `"]`).First()
	}

	if selection.Length() == 0 {
		return 0, &FetchError{Symbol: symbol, Field: field, Err: ErrMarkup}
	}

	text := selection.Text()
	value, err := ParseNumber(text)
	if err != nil {
		return 0, &FetchError{Symbol: symbol, Field: field, Err: fmt.Errorf("%w: %q", ErrFormat, text)}
	}

	return value, nil
}

// quotable reports whether s can be placed between double quotes of a css attribute selector as is
func quotable(s string) bool {
	return s != "" && !strings.ContainsAny(s, "\"\\\n")
}

// ParseNumber parse a number after stripping currency and formatting punctuation
func ParseNumber(text string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == ',', r == '+', r == '(', r == ')', r == '%', unicode.IsSpace(r):
			return -1
		case r == '−':
			return '-'
		}
		return r
	}, text)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("not a finite number: %s", cleaned)
	}

	return value, nil
}
