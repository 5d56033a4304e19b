// Package ops maps an operation on a resource to a kubectl invocation and to
// the text shown in the result view.
package ops

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Taishi66/kubedash/internal/config"
	"github.com/Taishi66/kubedash/internal/domain"
	"github.com/Taishi66/kubedash/internal/kubectl"
	"github.com/Taishi66/kubedash/internal/logging"
)

// mode says how a verb is carried out.
type mode int

const (
	modeCapture  mode = iota // run and show stdout, or stderr on failure
	modeRun                  // run and report success or failure
	modeInstruct             // never run; show the command line
	modeDelete               // never run; warning plus command line
	modeScale                // never run; scale up and scale down command lines
)

type plan struct {
	mode  mode
	title string
	args  func(d *Dispatcher, t domain.Target) []string
}

var plans = map[domain.Verb]plan{
	domain.VerbDescribe: {modeCapture, "Describe", func(_ *Dispatcher, t domain.Target) []string {
		return []string{"describe", t.Resource.Kind.Singular(), t.Resource.Name}
	}},
	domain.VerbLogs: {modeCapture, "Logs", func(d *Dispatcher, t domain.Target) []string {
		return d.logsArgs(t, false)
	}},
	domain.VerbLogsPrevious: {modeCapture, "Previous logs", func(d *Dispatcher, t domain.Target) []string {
		return d.logsArgs(t, true)
	}},
	domain.VerbRolloutStatus: {modeCapture, "Rollout status", func(_ *Dispatcher, t domain.Target) []string {
		return []string{"rollout", "status", t.Ref(), "--watch=false"}
	}},
	domain.VerbViewData: {modeCapture, "Data", func(_ *Dispatcher, t domain.Target) []string {
		return []string{"get", t.Resource.Kind.Singular(), t.Resource.Name, "-o", "yaml"}
	}},
	domain.VerbRestart: {modeRun, "Restart", func(_ *Dispatcher, t domain.Target) []string {
		return []string{"rollout", "restart", t.Ref()}
	}},
	domain.VerbEdit: {modeInstruct, "Edit", func(_ *Dispatcher, t domain.Target) []string {
		return []string{"edit", t.Ref()}
	}},
	domain.VerbPortForward: {modeInstruct, "Port forward", func(_ *Dispatcher, t domain.Target) []string {
		return []string{"port-forward", t.Ref(), portMapping(t.Resource.Ports)}
	}},
	domain.VerbExec: {modeInstruct, "Exec", func(d *Dispatcher, t domain.Target) []string {
		return append([]string{"exec", "-it", t.Resource.Name, "--"}, kubectl.SplitWords(d.opts.Shell)...)
	}},
	domain.VerbDelete: {modeDelete, "Delete", func(_ *Dispatcher, t domain.Target) []string {
		return []string{"delete", t.Ref()}
	}},
	domain.VerbScale: {modeScale, "Scale", nil},
}

// Options configures a Dispatcher.
type Options struct {
	Binary             string
	TailLines          int64
	Shell              string
	ProdPatterns       []string
	ReadonlyNamespaces []string
	Logger             *slog.Logger
}

// Dispatcher executes operations through a kubectl Runner.
type Dispatcher struct {
	runner kubectl.Runner
	opts   Options
}

// Compile-time check.
var _ domain.OperationExecutor = (*Dispatcher)(nil)

func NewDispatcher(runner kubectl.Runner, opts Options) *Dispatcher {
	if opts.Binary == "" {
		opts.Binary = config.DefaultKubectl
	}
	if opts.TailLines <= 0 {
		opts.TailLines = config.DefaultTailLines
	}
	if strings.TrimSpace(opts.Shell) == "" {
		opts.Shell = config.DefaultShell
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Dispatcher{runner: runner, opts: opts}
}

// Execute carries out verb against target. The returned error is non-nil only
// when kubectl could not be invoked at all.
func (d *Dispatcher) Execute(ctx context.Context, target domain.Target, verb domain.Verb) (domain.DisplayResult, error) {
	p, ok := plans[verb]
	if !ok {
		return domain.DisplayResult{}, fmt.Errorf("unsupported operation %v", verb)
	}

	log := d.opts.Logger.With(
		logging.Context(target.Context),
		logging.Namespace(target.Namespace),
		logging.Kind(target.Resource.Kind),
		logging.Operation(verb.String()),
	)
	title := fmt.Sprintf("%s %s", p.title, target.Ref())

	switch p.mode {
	case modeCapture:
		cmd := d.command(target, p.args(d, target))
		res, err := d.runner.Run(ctx, cmd.Args...)
		if err != nil {
			log.Warn("operation failed to start", logging.Err(err))
			return domain.DisplayResult{}, err
		}
		if res.Failed() {
			log.Warn("operation failed", logging.ExitCode(res.ExitCode))
			return domain.DisplayResult{
				Title:   title,
				Body:    "Error: " + string(res.Stderr),
				Command: cmd.String(),
				Failed:  true,
			}, nil
		}
		return domain.DisplayResult{Title: title, Body: string(res.Stdout), Command: cmd.String()}, nil

	case modeRun:
		return d.restart(ctx, log, target, title, p)

	case modeInstruct:
		cmd := d.command(target, p.args(d, target))
		return domain.DisplayResult{
			Title:   title,
			Body:    fmt.Sprintf("Run this command in a terminal:\n\n  %s\n", cmd),
			Command: cmd.String(),
		}, nil

	case modeDelete:
		cmd := d.command(target, p.args(d, target))
		var b strings.Builder
		fmt.Fprintf(&b, "WARNING: this permanently deletes %s from namespace %s.\n", target.Ref(), target.Namespace)
		if config.IsProdNamespace(target.Namespace, d.opts.ProdPatterns) {
			fmt.Fprintf(&b, "WARNING: %s looks like a PRODUCTION namespace.\n", target.Namespace)
		}
		fmt.Fprintf(&b, "\nTo proceed, run:\n\n  %s\n", cmd)
		return domain.DisplayResult{Title: title, Body: b.String(), Command: cmd.String()}, nil

	case modeScale:
		return d.scale(target, title), nil
	}
	return domain.DisplayResult{}, fmt.Errorf("unsupported operation %v", verb)
}

func (d *Dispatcher) restart(ctx context.Context, log *slog.Logger, target domain.Target, title string, p plan) (domain.DisplayResult, error) {
	if config.IsReadonlyNamespace(target.Namespace, d.opts.ReadonlyNamespaces) {
		log.Info("restart refused in readonly namespace")
		return domain.DisplayResult{
			Title:  title,
			Body:   fmt.Sprintf("Namespace %s is read-only; restart refused.", target.Namespace),
			Failed: true,
		}, nil
	}

	cmd := d.command(target, p.args(d, target))
	res, err := d.runner.Run(ctx, cmd.Args...)
	if err != nil {
		log.Warn("restart failed to start", logging.Err(err))
		return domain.DisplayResult{}, err
	}
	if res.Failed() {
		log.Warn("restart failed", logging.ExitCode(res.ExitCode))
		return domain.DisplayResult{
			Title:   title,
			Body:    fmt.Sprintf("Failed to restart %s:\nError: %s", target.Ref(), res.Stderr),
			Command: cmd.String(),
			Failed:  true,
		}, nil
	}
	log.Info("restart triggered")
	body := fmt.Sprintf("Restarted %s.\n", target.Ref())
	if out := strings.TrimSpace(string(res.Stdout)); out != "" {
		body += "\n" + out + "\n"
	}
	return domain.DisplayResult{Title: title, Body: body, Command: cmd.String()}, nil
}

func (d *Dispatcher) scale(target domain.Target, title string) domain.DisplayResult {
	current := target.Resource.Replicas
	down := max(current-1, 0)
	up := d.command(target, []string{"scale", target.Ref(), "--replicas", strconv.Itoa(int(current + 1))})
	dn := d.command(target, []string{"scale", target.Ref(), "--replicas", strconv.Itoa(int(down))})

	var b strings.Builder
	fmt.Fprintf(&b, "%s currently wants %d replicas.\n\n", target.Ref(), current)
	fmt.Fprintf(&b, "Scale up:\n\n  %s\n\n", up)
	fmt.Fprintf(&b, "Scale down:\n\n  %s\n", dn)
	return domain.DisplayResult{Title: title, Body: b.String(), Command: up.String()}
}

func (d *Dispatcher) command(t domain.Target, args []string) kubectl.Command {
	return kubectl.Command{
		Binary: d.opts.Binary,
		Args:   kubectl.Scoped(t.Context, t.Namespace, args...),
	}
}

func (d *Dispatcher) logsArgs(t domain.Target, previous bool) []string {
	args := []string{"logs", t.Resource.Name, "--tail", strconv.FormatInt(d.opts.TailLines, 10)}
	if previous {
		args = append(args, "--previous")
	}
	if t.Resource.Containers > 1 {
		args = append(args, "--all-containers", "--prefix")
	}
	return args
}

// portMapping picks the first known port and maps it to itself locally.
func portMapping(ports []int32) string {
	if len(ports) == 0 {
		return "8080:80"
	}
	p := strconv.Itoa(int(ports[0]))
	return p + ":" + p
}
