package kubectl

import (
	"context"
	"strings"
	"sync"
)

// FakeRunner is a scripted Runner for tests. Results are keyed by the
// space-joined argument list; unscripted calls exit 1.
type FakeRunner struct {
	mu      sync.Mutex
	Results map[string]Result
	Err     error
	Calls   [][]string
}

// Compile-time check.
var _ Runner = (*FakeRunner)(nil)

// On scripts the result for args.
func (f *FakeRunner) On(res Result, args ...string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Results == nil {
		f.Results = make(map[string]Result)
	}
	f.Results[strings.Join(args, " ")] = res
	return f
}

func (f *FakeRunner) Run(_ context.Context, args ...string) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, append([]string(nil), args...))
	if f.Err != nil {
		return Result{}, f.Err
	}
	res, ok := f.Results[strings.Join(args, " ")]
	if !ok {
		return Result{ExitCode: 1, Stderr: []byte("unexpected invocation: " + strings.Join(args, " "))}, nil
	}
	return res, nil
}

// LastCall returns the most recent argument list, or nil.
func (f *FakeRunner) LastCall() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Calls) == 0 {
		return nil
	}
	return f.Calls[len(f.Calls)-1]
}

// OK builds a successful Result with the given stdout.
func OK(stdout string) Result {
	return Result{Stdout: []byte(stdout)}
}

// Fail builds a failed Result with the given exit code and stderr.
func Fail(code int, stderr string) Result {
	return Result{ExitCode: code, Stderr: []byte(stderr)}
}
