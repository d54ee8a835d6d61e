package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/BrandonKowalski/easyconsole/internal/config"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	err = easyconsole.Init(easyconsole.Options{
		LogDirectory: cfg.Log.Directory,
		LogFilename:  cfg.Log.File,
		LogLevel:     cfg.Log.Level,
		Language:     cfg.Program.Language,
		Monochrome:   cfg.Program.Monochrome,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		return 1
	}
	defer easyconsole.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	program, err := newDemoProgram(easyconsole.NewConsole(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := program.Run(ctx); err != nil && !errors.Is(err, easyconsole.ErrInputCancelled) {
		return 1
	}
	return 0
}
