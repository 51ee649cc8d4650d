package command

import (
	"fmt"
	"net/http"

	"github.com/nzai/tickerboard/board"
	"github.com/nzai/tickerboard/constants"
	"github.com/nzai/tickerboard/quotes"
	"github.com/nzai/tickerboard/screens"
	"github.com/nzai/tickerboard/sources"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type Fetch struct{}

func (f *Fetch) Command() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "fetch quotes once and print them",
		ArgsUsage: "SYMBOL [SYMBOL...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "quote page site",
				Value:   constants.YahooBaseURL,
				EnvVars: []string{"TICKERBOARD_BASE_URL"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "request timeout, 0 means no timeout",
				EnvVars: []string{"TICKERBOARD_TIMEOUT"},
			},
		},
		Action: f.run,
	}
}

func (f *Fetch) run(c *cli.Context) error {
	tickers := quotes.NormalizeTickers(c.Args().Slice())
	if len(tickers) == 0 {
		tickers = constants.DefaultTickers
	}

	source := sources.NewYahooFinance(
		sources.WithBaseURL(c.String("base-url")),
		sources.WithHTTPClient(&http.Client{Timeout: c.Duration("timeout")}),
	)

	failed := 0
	for _, ticker := range tickers {
		quote, err := source.Fetch(c.Context, ticker)
		if err != nil {
			if c.Context.Err() != nil {
				return c.Context.Err()
			}

			zap.L().Warn("fetch quote failed", zap.Error(err), zap.String("ticker", ticker))
			failed++
			continue
		}

		row := quotes.NewRow(ticker, quote)
		fmt.Fprintf(c.App.Writer, "%-8s%s\n", row.Symbol, screens.Colorize(row.Text, board.QuoteColor(row.Positive)))
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d tickers failed", failed, len(tickers)), 1)
	}

	return nil
}
