package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Taishi66/kubedash/internal/config"
	"github.com/Taishi66/kubedash/internal/domain"
	"github.com/Taishi66/kubedash/internal/kubectl"
	"github.com/Taishi66/kubedash/internal/logging"
	"github.com/Taishi66/kubedash/internal/ops"
	"github.com/Taishi66/kubedash/internal/tui"
)

type rootOptions struct {
	configPath string
	kubectl    string
	logFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "kubedash",
		Short: "Browse Kubernetes resources from the terminal",
		Long: `kubedash walks you from a kubeconfig context to a namespace, a resource
and an operation on it. Every cluster call goes through kubectl.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate(`{{printf "kubedash version %s\n" .Version}}`)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath(), "config file")
	f.StringVar(&opts.kubectl, "kubectl", "", "kubectl binary (overrides the config file)")
	f.StringVar(&opts.logFile, "log-file", "", "write diagnostic logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "log every kubectl invocation")
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *rootOptions) (*config.AppConfig, error) {
	cfg, err := config.LoadConfigFrom(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.kubectl != "" {
		cfg.Kubectl = opts.kubectl
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// gateway joins the list adapter and the operation dispatcher.
type gateway struct {
	*kubectl.Client
	*ops.Dispatcher
}

func run(ctx context.Context, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer closer.Close()

	runner := kubectl.NewExecRunner(cfg.Kubectl, logger)
	client := kubectl.NewClient(runner, logger)
	dispatcher := ops.NewDispatcher(runner, ops.Options{
		Binary:             cfg.Kubectl,
		TailLines:          cfg.Logs.TailLines,
		Shell:              cfg.Exec.Shell,
		ProdPatterns:       cfg.ProdPatterns,
		ReadonlyNamespaces: cfg.ReadonlyNamespaces,
		Logger:             logger,
	})
	gw := gateway{Client: client, Dispatcher: dispatcher}

	contexts, err := startupContexts(ctx, gw)
	if err != nil {
		logger.Error("startup failed", logging.Err(err))
		return err
	}
	logger.Info("starting", "contexts", len(contexts), "kubectl", cfg.Kubectl)

	p := tea.NewProgram(tui.NewModel(gw, contexts, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// startupContexts enumerates contexts before any UI is drawn. Failing to do
// so, or finding none, ends the program.
func startupContexts(ctx context.Context, repo domain.ContextRepository) ([]domain.ContextInfo, error) {
	contexts, err := repo.ListContexts(ctx)
	if err != nil {
		return nil, errors.New(startupMessage(err))
	}
	if len(contexts) == 0 {
		return nil, errors.New("No Kubernetes contexts found. Please configure kubectl first.")
	}
	return contexts, nil
}

func startupMessage(err error) string {
	var toolErr *domain.ToolError
	if errors.As(err, &toolErr) && toolErr.Type != domain.ErrToolNotFound {
		detail := toolErr.Stderr
		if detail == "" {
			detail = toolErr.Message
		}
		return "Error loading contexts: " + detail
	}
	return fmt.Sprintf("Error: %v. Make sure kubectl is installed and configured.", err)
}
