package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/tilegrid/internal/app"
	"github.com/specialistvlad/tilegrid/internal/cli"
	"github.com/specialistvlad/tilegrid/internal/hcl"
	"github.com/tebeka/atexit"
)

// main is the entrypoint for the tilegrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Reports can be large; they are buffered and flushed on every exit path.
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		if err := out.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})

	if err := run(out, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			atexit.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	tilegridApp := app.NewApp(outW, logW, appConfig, hcl.NewLoader())
	return tilegridApp.Run(context.Background())
}
