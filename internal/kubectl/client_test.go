package kubectl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taishi66/kubedash/internal/domain"
)

func newTestClient(f *FakeRunner) *Client {
	c := NewClient(f, nil)
	c.now = func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestListContexts(t *testing.T) {
	f := (&FakeRunner{}).
		On(OK("dev\nprod\n\n"), "config", "get-contexts", "-o", "name").
		On(OK("prod\n"), "config", "current-context")

	contexts, err := newTestClient(f).ListContexts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ContextInfo{
		{Name: "dev"},
		{Name: "prod", Current: true},
	}, contexts)
}

func TestListContexts_NoCurrentContext(t *testing.T) {
	f := (&FakeRunner{}).
		On(OK("dev\n"), "config", "get-contexts", "-o", "name").
		On(Fail(1, "error: current-context is not set"), "config", "current-context")

	contexts, err := newTestClient(f).ListContexts(context.Background())
	require.NoError(t, err)
	require.Len(t, contexts, 1)
	assert.False(t, contexts[0].Current)
}

func TestListContexts_Failure(t *testing.T) {
	f := (&FakeRunner{}).
		On(Fail(1, "error: error loading config file\n"), "config", "get-contexts", "-o", "name")

	_, err := newTestClient(f).ListContexts(context.Background())
	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, domain.ErrToolFailed, toolErr.Type)
	assert.Equal(t, "error: error loading config file", toolErr.Stderr)
	assert.Equal(t, "Error: error: error loading config file", toolErr.Message)
	assert.Equal(t, 1, toolErr.ExitCode)
}

func TestListContexts_ToolMissing(t *testing.T) {
	f := &FakeRunner{Err: &domain.ToolError{Type: domain.ErrToolNotFound, Message: "kubectl not found in PATH"}}

	_, err := newTestClient(f).ListContexts(context.Background())
	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, domain.ErrToolNotFound, toolErr.Type)
}

func TestListNamespaces_SortedWithAge(t *testing.T) {
	f := (&FakeRunner{}).On(OK(`{"items": [
	  {"metadata": {"name": "kube-system", "creationTimestamp": "2025-12-31T12:00:00Z"}, "status": {"phase": "Active"}},
	  {"metadata": {"name": "default", "creationTimestamp": "2026-01-01T11:00:00Z"}, "status": {"phase": "Active"}},
	  {"metadata": {"name": "old"}, "status": {"phase": "Terminating"}}
	]}`), "--context", "dev", "get", "namespaces", "-o", "json")

	namespaces, err := newTestClient(f).ListNamespaces(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, []domain.NamespaceInfo{
		{Name: "default", Status: "Active", Age: "60m"},
		{Name: "kube-system", Status: "Active", Age: "24h"},
		{Name: "old", Status: "Terminating", Age: "Unknown"},
	}, namespaces)
}

func TestListNamespaces_DecodeError(t *testing.T) {
	f := (&FakeRunner{}).On(OK("not json"), "--context", "dev", "get", "namespaces", "-o", "json")

	_, err := newTestClient(f).ListNamespaces(context.Background(), "dev")
	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, domain.ErrDecode, toolErr.Type)
}

func TestListResources_Projects(t *testing.T) {
	f := (&FakeRunner{}).On(OK(`{"items": [
	  {"metadata": {"name": "api"}, "spec": {"replicas": 2}, "status": {"readyReplicas": 2, "updatedReplicas": 2, "availableReplicas": 2}}
	]}`), "--context", "dev", "-n", "shop", "get", "deployments", "-o", "json")

	view, err := newTestClient(f).ListResources(context.Background(), "dev", "shop", domain.KindDeployment)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDeployment, view.Kind)
	assert.Equal(t, [][]string{{"api", "2/2", "2", "2", "Unknown"}}, view.Rows)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int32(2), view.Items[0].Replicas)
}

func TestListResources_NamespaceNotFound(t *testing.T) {
	f := (&FakeRunner{}).On(Fail(1, "namespace not found"), "--context", "dev", "-n", "ghost", "get", "pods", "-o", "json")

	_, err := newTestClient(f).ListResources(context.Background(), "dev", "ghost", domain.KindPod)
	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, domain.ErrNotFound, toolErr.Type)
	assert.Equal(t, "Error: namespace not found", toolErr.Message)
}

func TestListResources_DecodeError(t *testing.T) {
	f := (&FakeRunner{}).On(OK("{"), "--context", "dev", "-n", "shop", "get", "secrets", "-o", "json")

	_, err := newTestClient(f).ListResources(context.Background(), "dev", "shop", domain.KindSecret)
	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, domain.ErrDecode, toolErr.Type)
	assert.Contains(t, toolErr.Message, "Error loading secrets")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		stderr string
		want   domain.ErrType
	}{
		{"error: You must be logged in to the server (Unauthorized)", domain.ErrUnauthorized},
		{`pods is forbidden: User "bob" cannot list resource "pods"`, domain.ErrForbidden},
		{"Unable to connect to the server: x509: certificate signed by unknown authority", domain.ErrTLS},
		{"Unable to connect to the server: dial tcp 10.0.0.1:6443: connect: connection refused", domain.ErrUnreachable},
		{"Unable to connect to the server: dial tcp: lookup api.example.com: no such host", domain.ErrUnreachable},
		{`Error from server (NotFound): namespaces "ghost" not found`, domain.ErrNotFound},
		{"error: unknown flag: --bogus", domain.ErrToolFailed},
		{"", domain.ErrToolFailed},
	}
	for _, tt := range tests {
		t.Run(tt.stderr, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.stderr))
		})
	}
}

func TestFailureFallsBackToStdout(t *testing.T) {
	err := failure(Result{ExitCode: 2, Stdout: []byte("something odd\n")})
	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "Error: something odd", toolErr.Message)
	assert.Equal(t, 2, toolErr.ExitCode)
}
