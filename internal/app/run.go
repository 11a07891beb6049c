package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/procutil"
	"github.com/oshokin/utilkit/report"
)

// RunOptions holds the flags of the run command.
type RunOptions struct {
	// Dir is the working directory of the process.
	Dir string
	// Env holds extra KEY=VALUE variables.
	Env []string
	// Check turns a non-zero exit code into an error.
	Check bool
	// Report prints a result summary after the output.
	Report bool
	// Envelope prints the captured result as an enveloped JSON document instead of the raw output.
	Envelope bool
}

// ExecuteRunCommand runs args, replays the captured output to stdout and stderr
// and returns the exit code of the process.
func ExecuteRunCommand(
	ctx context.Context,
	stdout, stderr io.Writer,
	cfg *config.Config,
	args []string,
	opts RunOptions,
) (int, error) {
	runOpts := []procutil.Option{
		procutil.WithDir(opts.Dir),
		procutil.WithEnv(opts.Env...),
		procutil.WithLogger(logger.FromContext(ctx)),
	}

	// A zero limit from the configuration disables the cap.
	runOpts = append(runOpts, procutil.WithMaxOutput(cfg.ParsedMaxOutputSize))

	if opts.Check {
		runOpts = append(runOpts, procutil.WithCheck())
	}

	result, runErr := procutil.Run(ctx, args, runOpts...)
	if result == nil {
		return -1, runErr
	}

	if result.Truncated {
		logger.Warnf(ctx, "Output of %s exceeded %s and was truncated",
			args[0], humanize.IBytes(uint64(max(cfg.ParsedMaxOutputSize, 0))))
	}

	if opts.Envelope {
		packed, err := report.Pack(result, "", report.DefaultEnvelope)
		if err != nil {
			return result.ExitCode, err
		}

		if _, err = fmt.Fprintln(stdout, packed); err != nil {
			return result.ExitCode, err
		}
	} else {
		if _, err := io.WriteString(stdout, result.Stdout); err != nil {
			return result.ExitCode, err
		}

		if _, err := io.WriteString(stderr, result.Stderr); err != nil {
			return result.ExitCode, err
		}
	}

	if opts.Report {
		if _, err := fmt.Fprintln(stdout, runSummary(result, runErr)); err != nil {
			return result.ExitCode, err
		}
	}

	return result.ExitCode, runErr
}

func runSummary(result *procutil.Result, runErr error) string {
	detail := fmt.Sprintf("- Command: %s\n- Exit code: %d\n- Duration: %s",
		strings.Join(result.Args, " "), result.ExitCode, result.Duration.Round(time.Millisecond))

	if runErr == nil && result.ExitCode == 0 {
		return report.ShowResults(true, detail, "", false)
	}

	advice := "inspect the output above"

	var exitErr *procutil.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		advice = runErr.Error()
	}

	return report.ShowResults(false, detail, advice, false)
}
