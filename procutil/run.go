package procutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/oshokin/utilkit/report"
)

// DefaultMaxOutput is the default cap for each captured stream.
const DefaultMaxOutput = 1 * 1024 * 1024 // 1 MB

// Static error definitions for better error handling.
var (
	// ErrEmptyCommand indicates that no program was given.
	ErrEmptyCommand = errors.New("empty command")
	// ErrNonZeroExit indicates that a checked process exited with a non-zero code.
	ErrNonZeroExit = errors.New("non-zero exit code")
)

// Result is the outcome of a finished process.
type Result struct {
	// Args is the command line that was run.
	Args []string
	// Stdout is the captured standard output.
	Stdout string
	// Stderr is the captured standard error.
	Stderr string
	// ExitCode is the process exit code, or -1 if it was killed by a signal.
	ExitCode int
	// Truncated reports whether either stream exceeded the capture limit.
	Truncated bool
	// Duration is the wall time the process ran for.
	Duration time.Duration
}

// ExitError is returned by checked runs when the process exits with a non-zero code.
type ExitError struct {
	// Result holds everything captured from the process.
	Result *Result
}

// Error renders a multi-line explanation including the tail of stderr.
func (e *ExitError) Error() string {
	advice := "inspect the command's stderr"
	if tail := lastLine(e.Result.Stderr); tail != "" {
		advice += ", it ended with: " + tail
	}

	return report.FormatErrorMessage(
		"Command failed: "+strings.Join(e.Result.Args, " "),
		"exit code 0",
		fmt.Sprintf("exit code %d", e.Result.ExitCode),
		advice,
		"aborted",
	)
}

// Unwrap returns ErrNonZeroExit.
func (*ExitError) Unwrap() error {
	return ErrNonZeroExit
}

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	dir       string
	env       []string
	stdin     io.Reader
	check     bool
	maxOutput int64
	logger    *zap.Logger
}

// WithDir sets the working directory.
func WithDir(dir string) Option {
	return func(o *runOptions) {
		o.dir = dir
	}
}

// WithEnv appends KEY=VALUE entries to the inherited environment.
func WithEnv(env ...string) Option {
	return func(o *runOptions) {
		o.env = append(o.env, env...)
	}
}

// WithStdin feeds r to the process.
func WithStdin(r io.Reader) Option {
	return func(o *runOptions) {
		o.stdin = r
	}
}

// WithCheck makes a non-zero exit code an *ExitError.
func WithCheck() Option {
	return func(o *runOptions) {
		o.check = true
	}
}

// WithMaxOutput caps each captured stream at limit bytes; zero or less means unlimited.
func WithMaxOutput(limit int64) Option {
	return func(o *runOptions) {
		o.maxOutput = limit
	}
}

// WithLogger logs the command line and outcome at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *runOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Run starts args[0] with the remaining arguments, waits for it and captures its output.
// A process that starts always yields a Result, even when an error is returned as well.
func Run(ctx context.Context, args []string, opts ...Option) (*Result, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, ErrEmptyCommand
	}

	o := runOptions{
		maxOutput: DefaultMaxOutput,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	var (
		stdout = &cappedBuffer{limit: o.maxOutput}
		stderr = &cappedBuffer{limit: o.maxOutput}
		cmd    = exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // Running arbitrary commands is the point.
	)

	cmd.Dir = o.dir
	cmd.Stdin = o.stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if len(o.env) > 0 {
		cmd.Env = append(cmd.Environ(), o.env...)
	}

	o.logger.Debug("Running command", zap.Strings("args", args), zap.String("dir", o.dir))

	startTime := time.Now()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	waitErr := cmd.Wait()

	result := &Result{
		Args:      args,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  cmd.ProcessState.ExitCode(),
		Truncated: stdout.truncated() || stderr.truncated(),
		Duration:  time.Since(startTime),
	}

	o.logger.Debug("Command finished",
		zap.Strings("args", args),
		zap.Int("exit_code", result.ExitCode),
		zap.Duration("duration", result.Duration),
		zap.Bool("truncated", result.Truncated))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("command interrupted: %w", ctxErr)
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return result, fmt.Errorf("failed to wait for command: %w", waitErr)
	}

	if o.check && result.ExitCode != 0 {
		return result, &ExitError{Result: result}
	}

	return result, nil
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\r\n")
	if i := strings.LastIndexAny(s, "\r\n"); i >= 0 {
		s = s[i+1:]
	}

	return strings.TrimSpace(s)
}
