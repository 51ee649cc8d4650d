package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nzai/tickerboard/cmd/tickerboard/command"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	err := run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "\033[31m"+err.Error()+"\033[0m")
		os.Exit(1)
	}
}

// run returns after every deferred sync, main may exit right after it
func run(args []string) error {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	// flags may be set in a .env file next to the binary
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.L().Warn("load .env failed", zap.Error(err))
	}

	app := newApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.RunContext(ctx, args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:     "tickerboard",
		Usage:    "show stock quotes on a small screen",
		Commands: []*cli.Command{},
		// exit codes are decided by main once run returned
		ExitErrHandler: func(*cli.Context, error) {},
	}

	for _, commander := range command.Commands {
		app.Commands = append(app.Commands, commander.Command())
	}

	return app
}
