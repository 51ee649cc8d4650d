package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nzai/tickerboard/constants"
	"github.com/nzai/tickerboard/notifiers"
	"github.com/nzai/tickerboard/quotes"
	"github.com/nzai/tickerboard/screens"
	"github.com/nzai/tickerboard/sources"
	"go.uber.org/zap"
)

// TickerQuestion printed when the user asks to replace the ticker list
const TickerQuestion = "Enter new tickers separated by a comma: "

// State board session state
type State int

const (
	// Running the loop is cycling
	Running State = iota
	// Terminated the loop returned
	Terminated
)

func (s State) String() string {
	if s == Running {
		return "running"
	}

	return "terminated"
}

// Prompter ask a question without blocking the loop
type Prompter interface {
	Request(question string) bool
	Poll() (string, bool)
}

// Option is a configuration option for the board session.
type Option func(*Session)

// WithTickers sets the initial ticker list.
func WithTickers(tickers ...string) Option {
	return func(s *Session) {
		s.tickers = quotes.NormalizeTickers(tickers)
	}
}

// WithInterval sets the sleep between two cycles.
func WithInterval(interval time.Duration) Option {
	return func(s *Session) {
		s.interval = interval
	}
}

// WithFailureDelay sets the pause after a ticker failed to fetch.
func WithFailureDelay(delay time.Duration) Option {
	return func(s *Session) {
		s.failureDelay = delay
	}
}

// WithPrompter sets the prompter used to replace the ticker list.
func WithPrompter(prompter Prompter) Option {
	return func(s *Session) {
		s.prompter = prompter
	}
}

// WithNotifier sets the notifier of cycle results.
func WithNotifier(notifier notifiers.Notifier) Option {
	return func(s *Session) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithMetrics sets row text size and spacing.
func WithMetrics(metrics Metrics) Option {
	return func(s *Session) {
		s.metrics = metrics
	}
}

// Session ticker board loop context
type Session struct {
	source       sources.Source
	screen       screens.Screen
	prompter     Prompter
	notifier     notifiers.Notifier
	metrics      Metrics
	interval     time.Duration
	failureDelay time.Duration

	// requests input events collected since the last cycle
	requests []screens.Event

	// mu guards fields read by the status api
	mu      sync.RWMutex
	tickers []string
	state   State
	last    *notifiers.CycleResult
}

// NewSession create board session
func NewSession(source sources.Source, screen screens.Screen, options ...Option) *Session {
	session := &Session{
		source:       source,
		screen:       screen,
		notifier:     notifiers.Nop{},
		metrics:      DefaultMetrics,
		interval:     constants.CycleInterval,
		failureDelay: constants.FailureDelay,
		tickers:      append([]string(nil), constants.DefaultTickers...),
		state:        Running,
	}

	for _, option := range options {
		option(session)
	}

	return session
}

// Tickers current ticker list
func (s *Session) Tickers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.tickers...)
}

// SetTickers replace the whole ticker list
func (s *Session) SetTickers(tickers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickers = append([]string(nil), tickers...)
}

// State current session state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Last result of the latest completed cycle, nil before the first one
func (s *Session) Last() *notifiers.CycleResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}

// Run cycle until ctx is canceled or the screen is closed, other errors are shown on screen and returned
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("board panic recovered", zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("board panic: %v", r)
		}

		s.mu.Lock()
		s.state = Terminated
		s.mu.Unlock()

		if err == nil {
			return
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, screens.ErrClosed) {
			zap.L().Info("quitting", zap.NamedError("reason", err))
			err = nil
			return
		}

		zap.L().Error("board stopped on error", zap.Error(err))
		presentErr := s.screen.Present(ErrorFrame(s.metrics))
		if presentErr != nil {
			zap.L().Warn("present error frame failed", zap.Error(presentErr))
		}
	}()

	for {
		err = s.HandleInput()
		if err != nil {
			return err
		}

		_, err = s.Cycle(ctx)
		if err != nil {
			return err
		}

		err = s.wait(ctx, s.interval)
		if err != nil {
			return err
		}
	}
}

// Cycle fetch every ticker, render the fetched rows and notify the result.
// A failed ticker pauses the whole cycle for the failure delay.
func (s *Session) Cycle(ctx context.Context) (*notifiers.CycleResult, error) {
	start := time.Now()
	tickers := s.Tickers()
	result := notifiers.NewCycleResult(start, tickers)

	zap.L().Info("fetching data", zap.Stringer("cycle", result.ID), zap.Strings("tickers", tickers))

	for _, symbol := range tickers {
		quote, err := s.source.Fetch(ctx, symbol)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			var fetchErr *sources.FetchError
			if !errors.As(err, &fetchErr) {
				return nil, fmt.Errorf("fetch %s: %w", symbol, err)
			}

			zap.L().Warn("fetch ticker quote failed",
				zap.Error(err),
				zap.String("symbol", symbol),
				zap.Duration("wait", s.failureDelay))

			result.Failures = append(result.Failures, notifiers.Failure{Symbol: symbol, Error: err.Error()})

			err = s.wait(ctx, s.failureDelay)
			if err != nil {
				return nil, err
			}
			continue
		}

		result.Rows = append(result.Rows, quotes.NewRow(symbol, quote))
	}

	err := s.screen.Present(Render(s.screen, result.Rows, s.metrics))
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	s.notifier.Notify(result)

	zap.L().Info("done",
		zap.Stringer("cycle", result.ID),
		zap.Int("rows", len(result.Rows)),
		zap.Int("failures", len(result.Failures)),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// HandleInput apply input requests collected since the last call and the answer of a pending prompt
func (s *Session) HandleInput() error {
	requests := s.requests
	s.requests = nil

	for _, request := range requests {
		switch request {
		case screens.EventToggleFullscreen:
			err := s.screen.ToggleFullscreen()
			if err != nil {
				return fmt.Errorf("toggle fullscreen: %w", err)
			}
		case screens.EventEditTickers:
			if s.prompter == nil {
				zap.L().Warn("ticker prompt unavailable")
				continue
			}

			if s.prompter.Request(TickerQuestion) {
				zap.L().Info("waiting for new tickers")
			}
		}
	}

	if s.prompter == nil {
		return nil
	}

	answer, ok := s.prompter.Poll()
	if !ok {
		return nil
	}

	tickers := quotes.ParseTickers(answer)
	if len(tickers) == 0 {
		zap.L().Warn("ignore empty ticker list", zap.String("answer", answer))
		return nil
	}

	s.SetTickers(tickers)
	zap.L().Info("ticker list replaced", zap.Strings("tickers", tickers))

	return nil
}

func (s *Session) wait(ctx context.Context, d time.Duration) error {
	events, err := s.screen.Wait(ctx, d)
	s.requests = append(s.requests, events...)
	return err
}
