package sources

import (
	"context"

	"github.com/nzai/tickerboard/quotes"
)

// Source define ticker quote source
//
//go:generate mockgen -package=board -destination=../board/mock_source_test.go -source=source.go Source
type Source interface {
	// Fetch fetch the current quote of symbol
	Fetch(ctx context.Context, symbol string) (*quotes.Quote, error)
}
