package notifiers

import (
	"time"

	"github.com/google/uuid"
	"github.com/nzai/tickerboard/quotes"
)

// CycleResult rows rendered by one board cycle
type CycleResult struct {
	ID       uuid.UUID     `json:"id"`
	Time     time.Time     `json:"time"`
	Tickers  []string      `json:"tickers"`
	Rows     []quotes.Row  `json:"rows"`
	Failures []Failure     `json:"failures,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Failure ticker that could not be fetched
type Failure struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error"`
}

// NewCycleResult create cycle result started at start
func NewCycleResult(start time.Time, tickers []string) *CycleResult {
	return &CycleResult{
		ID:      uuid.New(),
		Time:    start,
		Tickers: append([]string(nil), tickers...),
		Rows:    []quotes.Row{},
	}
}
