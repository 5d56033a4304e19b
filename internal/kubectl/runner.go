// Package kubectl runs the kubectl binary as a subprocess and adapts its
// output to the domain model.
package kubectl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/Taishi66/kubedash/internal/domain"
	"github.com/Taishi66/kubedash/internal/logging"
)

// LookPathFunc allows overriding exec.LookPath for testing.
var LookPathFunc = exec.LookPath

// Result is the captured outcome of one kubectl invocation.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Failed reports a non-zero exit status.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Runner invokes kubectl with the given arguments.
// A non-nil error means the process could not be started; a process that ran
// and exited non-zero is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, args ...string) (Result, error)
}

// ExecRunner runs a real kubectl binary.
type ExecRunner struct {
	Binary string
	Logger *slog.Logger
}

// Compile-time check.
var _ Runner = (*ExecRunner)(nil)

func NewExecRunner(binary string, logger *slog.Logger) *ExecRunner {
	if binary == "" {
		binary = "kubectl"
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &ExecRunner{Binary: binary, Logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) (Result, error) {
	path, err := LookPathFunc(r.Binary)
	if err != nil {
		r.Logger.Warn("kubectl not found", slog.String("binary", r.Binary), logging.Err(err))
		return Result{}, &domain.ToolError{
			Type:    domain.ErrToolNotFound,
			Message: fmt.Sprintf("%s not found in PATH", r.Binary),
			Err:     err,
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		r.Logger.Warn("kubectl could not start", logging.Args(args), logging.Err(err))
		return res, &domain.ToolError{
			Type:    domain.ErrToolNotFound,
			Message: fmt.Sprintf("run %s: %v", r.Binary, err),
			Err:     err,
		}
	}

	r.Logger.Debug("kubectl finished",
		logging.Args(args),
		logging.ExitCode(res.ExitCode),
		logging.Duration(elapsed),
	)
	return res, nil
}
