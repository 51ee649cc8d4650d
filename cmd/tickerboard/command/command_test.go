package command

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nzai/tickerboard/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp(writer *bytes.Buffer, commands ...*cli.Command) *cli.App {
	return &cli.App{
		Name:     "tickerboard",
		Writer:   writer,
		Commands: commands,
		ExitErrHandler: func(*cli.Context, error) {
		},
	}
}

func TestRun_Config(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "board.toml")
	err := os.WriteFile(filePath, []byte(`
tickers = ["spy", "qqq"]
interval = "30s"
screen = "console"

[nsq]
broker = "127.0.0.1:4150"
topic = "board"
`), 0o644)
	require.NoError(t, err)

	cases := []struct {
		name  string
		args  []string
		check func(*testing.T, *config.Config)
	}{
		{
			name: "file only",
			args: []string{"-c", filePath},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, []string{"SPY", "QQQ"}, cfg.Tickers)
				require.Equal(t, 30*time.Second, cfg.Interval.Duration)
				require.Equal(t, 20*time.Second, cfg.FailureDelay.Duration)
				require.Equal(t, config.ScreenConsole, cfg.Screen)
				require.True(t, cfg.Fullscreen)
				require.Equal(t, "board", cfg.Nsq.Topic)
			},
		},
		{
			name: "flags override file",
			args: []string{"-c", filePath, "--tickers", " nvda, ,gme ", "--interval", "5s", "--windowed", "--log-level", "debug"},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, []string{"NVDA", "GME"}, cfg.Tickers)
				require.Equal(t, 5*time.Second, cfg.Interval.Duration)
				require.False(t, cfg.Fullscreen)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "127.0.0.1:4150", cfg.Nsq.Broker)
			},
		},
		{
			name: "no file",
			args: []string{"--screen", "console", "--listen", ":21000"},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, []string{"RKLB", "ASTS", "SPY", "QQQ", "NVDA", "GME"}, cfg.Tickers)
				require.Equal(t, 60*time.Second, cfg.Interval.Duration)
				require.Equal(t, ":21000", cfg.Listen)
			},
		},
	}

	for _, _case := range cases {
		t.Run(_case.name, func(t *testing.T) {
			r := new(Run)
			command := r.Command()

			var cfg *config.Config
			command.Action = func(c *cli.Context) error {
				var err error
				cfg, err = r.config(c)
				return err
			}

			app := newTestApp(new(bytes.Buffer), command)
			err := app.Run(append([]string{"tickerboard", "run"}, _case.args...))
			require.NoError(t, err)
			require.NotNil(t, cfg)

			_case.check(t, cfg)
		})
	}
}

func TestRun_ConfigInvalid(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "empty tickers", args: []string{"--tickers", " , "}},
		{name: "unknown screen", args: []string{"--screen", "lcd"}},
		{name: "negative interval", args: []string{"--interval", "-1s"}},
		{name: "missing file", args: []string{"-c", filepath.Join(os.TempDir(), "tickerboard-missing.toml")}},
	}

	for _, _case := range cases {
		t.Run(_case.name, func(t *testing.T) {
			r := new(Run)
			command := r.Command()
			command.Action = func(c *cli.Context) error {
				_, err := r.config(c)
				return err
			}

			app := newTestApp(new(bytes.Buffer), command)
			err := app.Run(append([]string{"tickerboard", "run"}, _case.args...))
			require.Error(t, err)
		})
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/quote/")
		if symbol != "NVDA" {
			http.NotFound(w, r)
			return
		}

		fmt.Fprintf(w, `<html><body>
<fin-streamer data-symbol="NVDA" data-field="regularMarketPrice">1,234.50</fin-streamer>
<fin-streamer data-symbol="NVDA" data-field="regularMarketChange">+12.34</fin-streamer>
<fin-streamer data-symbol="NVDA" data-field="regularMarketChangePercent">(+1.01%%)</fin-streamer>
</body></html>`)
	}))
	defer server.Close()

	buffer := new(bytes.Buffer)
	app := newTestApp(buffer, new(Fetch).Command())

	err := app.RunContext(context.Background(), []string{"tickerboard", "fetch", "--base-url", server.URL, "nvda"})
	require.NoError(t, err)
	require.Contains(t, buffer.String(), "NVDA")
	require.Contains(t, buffer.String(), "$1,234.50 (+12.34, +1.01%)")

	buffer.Reset()
	err = app.RunContext(context.Background(), []string{"tickerboard", "fetch", "--base-url", server.URL, "NVDA", "GME"})
	require.Error(t, err)
	require.Contains(t, buffer.String(), "NVDA")
	require.NotContains(t, buffer.String(), "GME")

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode())
}

func TestShowVersion(t *testing.T) {
	buffer := new(bytes.Buffer)
	app := newTestApp(buffer, ShowVersion{}.Command())

	require.NoError(t, app.Run([]string{"tickerboard", "v"}))
	require.Equal(t, Version+"\n", buffer.String())
}
