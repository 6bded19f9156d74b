package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/tilegrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tilegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Tilegrid - expands FPGA die descriptions into tile graphs, bonded pads and
bitstream frame geometry.

Usage:
  tilegrid [options] [DEVICE_PATH...]

Arguments:
  DEVICE_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	deviceFlag := flagSet.String("device", "", "Path to the device file or directory.")
	dFlag := flagSet.String("d", "", "Path to the device file or directory (shorthand).")
	formatFlag := flagSet.String("format", app.FormatTable, "Report format. Options: 'table' or 'yaml'.")
	onlyFlag := flagSet.String("only", "", "Comma-separated device names to expand. Empty expands all.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of devices expanded concurrently.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *deviceFlag != "" {
		paths = append(paths, *deviceFlag)
	}
	if *dFlag != "" {
		paths = append(paths, *dFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Device paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No device path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	var only []string
	for _, name := range strings.Split(*onlyFlag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			only = append(only, name)
		}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DevicePaths: paths,
		Only:        only,
		Format:      strings.ToLower(*formatFlag),
		LogFormat:   logFormat,
		LogLevel:    strings.ToLower(*logLevelFlag),
		WorkerCount: *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
