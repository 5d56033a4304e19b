package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taishi66/kubedash/internal/domain"
	"github.com/Taishi66/kubedash/internal/kubectl"
)

func TestStartupContexts(t *testing.T) {
	runner := (&kubectl.FakeRunner{}).
		On(kubectl.OK("dev\nprod\n"), "config", "get-contexts", "-o", "name").
		On(kubectl.OK("prod\n"), "config", "current-context")
	client := kubectl.NewClient(runner, nil)

	contexts, err := startupContexts(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, []domain.ContextInfo{{Name: "dev"}, {Name: "prod", Current: true}}, contexts)
}

func TestStartupContextsNone(t *testing.T) {
	runner := (&kubectl.FakeRunner{}).
		On(kubectl.OK(""), "config", "get-contexts", "-o", "name")
	client := kubectl.NewClient(runner, nil)

	_, err := startupContexts(context.Background(), client)
	require.Error(t, err)
	assert.Equal(t, "No Kubernetes contexts found. Please configure kubectl first.", err.Error())
}

func TestStartupContextsToolFailed(t *testing.T) {
	runner := (&kubectl.FakeRunner{}).
		On(kubectl.Fail(1, "error: error loading config file\n"), "config", "get-contexts", "-o", "name")
	client := kubectl.NewClient(runner, nil)

	_, err := startupContexts(context.Background(), client)
	require.Error(t, err)
	assert.Equal(t, "Error loading contexts: error: error loading config file", err.Error())
}

func TestStartupContextsToolMissing(t *testing.T) {
	mock := &domain.MockGateway{
		ListContextsErr: &domain.ToolError{Type: domain.ErrToolNotFound, Message: "kubectl not found in PATH"},
	}

	_, err := startupContexts(context.Background(), mock)
	require.Error(t, err)
	assert.Equal(t, "Error: kubectl not found in PATH. Make sure kubectl is installed and configured.", err.Error())
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kubectl: /usr/bin/kubectl\nlog:\n  level: warn\n"), 0o644))

	cfg, err := loadConfig(&rootOptions{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/kubectl", cfg.Kubectl)
	assert.Equal(t, "warn", cfg.Log.Level)

	cfg, err = loadConfig(&rootOptions{
		configPath: path,
		kubectl:    "/opt/kubectl",
		logFile:    "/tmp/kubedash.log",
		debug:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "/opt/kubectl", cfg.Kubectl)
	assert.Equal(t, "/tmp/kubedash.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "kubectl", "log-file", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, version, cmd.Version)
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}
