package command

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/nzai/tickerboard/board"
	"github.com/nzai/tickerboard/cmd/tickerboard/api"
	"github.com/nzai/tickerboard/config"
	"github.com/nzai/tickerboard/constants"
	"github.com/nzai/tickerboard/notifiers"
	"github.com/nzai/tickerboard/prompts"
	"github.com/nzai/tickerboard/quotes"
	"github.com/nzai/tickerboard/screens"
	_ "github.com/nzai/tickerboard/screens/raylib"
	"github.com/nzai/tickerboard/sources"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type Run struct {
	configPath string
}

func (r *Run) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "fetch quotes and show them on screen until interrupted",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "toml config `file`",
				EnvVars:     []string{"TICKERBOARD_CONFIG"},
				Destination: &r.configPath,
			},
			&cli.StringFlag{
				Name:    "tickers",
				Aliases: []string{"t"},
				Usage:   "comma separated ticker symbols, eg: \"SPY,QQQ,NVDA\"",
				EnvVars: []string{"TICKERBOARD_TICKERS"},
			},
			&cli.DurationFlag{
				Name:    "interval",
				Usage:   "sleep between two cycles",
				EnvVars: []string{"TICKERBOARD_INTERVAL"},
			},
			&cli.DurationFlag{
				Name:    "failure-delay",
				Usage:   "pause after a ticker failed to fetch",
				EnvVars: []string{"TICKERBOARD_FAILURE_DELAY"},
			},
			&cli.StringFlag{
				Name:    "screen",
				Usage:   "screen backend: raylib or console",
				EnvVars: []string{"TICKERBOARD_SCREEN"},
			},
			&cli.BoolFlag{
				Name:    "windowed",
				Usage:   "start in a window instead of full screen",
				EnvVars: []string{"TICKERBOARD_WINDOWED"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "quote request timeout, 0 means no timeout",
				EnvVars: []string{"TICKERBOARD_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "listen",
				Usage:   "status api `address`, eg: \":21000\"",
				EnvVars: []string{"TICKERBOARD_LISTEN"},
			},
			&cli.StringFlag{
				Name:    "nsq-broker",
				Usage:   "publish cycle results to nsqd `address`",
				EnvVars: []string{"TICKERBOARD_NSQ_BROKER"},
			},
			&cli.StringFlag{
				Name:    "nsq-topic",
				Usage:   "nsq topic of cycle results",
				EnvVars: []string{"TICKERBOARD_NSQ_TOPIC"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"TICKERBOARD_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "also write json logs to a rotated `file`",
				EnvVars: []string{"TICKERBOARD_LOG_FILE"},
			},
		},
		Action: r.run,
	}
}

func (r *Run) run(c *cli.Context) error {
	cfg, err := r.config(c)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	source := sources.NewYahooFinance(
		sources.WithBaseURL(cfg.BaseURL),
		sources.WithUserAgent(cfg.UserAgent),
		sources.WithHTTPClient(&http.Client{Timeout: cfg.Timeout.Duration}),
	)

	notifier, err := newNotifier(cfg)
	if err != nil {
		return err
	}
	defer notifier.Close()

	screen, err := screens.Parse(cfg.Screen, screens.Options{
		Width:      constants.ScreenWidth,
		Height:     constants.ScreenHeight,
		Title:      "tickerboard",
		Fullscreen: cfg.Fullscreen,
		Writer:     os.Stdout,
	})
	if err != nil {
		return err
	}
	defer screen.Close()

	session := board.NewSession(source, screen,
		board.WithTickers(cfg.Tickers...),
		board.WithInterval(cfg.Interval.Duration),
		board.WithFailureDelay(cfg.FailureDelay.Duration),
		board.WithPrompter(prompts.New(os.Stdin, os.Stdout)),
		board.WithNotifier(notifier),
	)

	if cfg.Listen != "" {
		server := api.NewServer(session, cfg.Listen)
		go func() {
			err := server.Run()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				zap.L().Error("status api stopped", zap.Error(err), zap.String("listen", cfg.Listen))
			}
		}()
		defer server.Close()
	}

	zap.L().Info("board start",
		zap.Strings("tickers", cfg.Tickers),
		zap.Duration("interval", cfg.Interval.Duration),
		zap.Duration("failureDelay", cfg.FailureDelay.Duration),
		zap.String("screen", cfg.Screen))

	return session.Run(c.Context)
}

// config load the config file and apply the flags that were set
func (r *Run) config(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Parse(r.configPath)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", r.configPath, err)
	}

	if c.IsSet("tickers") {
		cfg.Tickers = quotes.ParseTickers(c.String("tickers"))
	}
	if c.IsSet("interval") {
		cfg.Interval.Duration = c.Duration("interval")
	}
	if c.IsSet("failure-delay") {
		cfg.FailureDelay.Duration = c.Duration("failure-delay")
	}
	if c.IsSet("screen") {
		cfg.Screen = c.String("screen")
	}
	if c.IsSet("windowed") {
		cfg.Fullscreen = !c.Bool("windowed")
	}
	if c.IsSet("timeout") {
		cfg.Timeout.Duration = c.Duration("timeout")
	}
	if c.IsSet("listen") {
		cfg.Listen = c.String("listen")
	}
	if c.IsSet("nsq-broker") {
		cfg.Nsq.Broker = c.String("nsq-broker")
	}
	if c.IsSet("nsq-topic") {
		cfg.Nsq.Topic = c.String("nsq-topic")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}

	err = cfg.Valid()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func newNotifier(cfg *config.Config) (notifiers.Notifier, error) {
	if cfg.Nsq.Broker == "" {
		return notifiers.Nop{}, nil
	}

	notifier, err := notifiers.NewNsq(cfg.Nsq.Broker, cfg.Nsq.TLSCert, cfg.Nsq.TLSKey, cfg.Nsq.Topic)
	if err != nil {
		return nil, err
	}

	return notifier, nil
}
