package kubectl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"

	"github.com/Taishi66/kubedash/internal/domain"
	"github.com/Taishi66/kubedash/internal/logging"
	"github.com/Taishi66/kubedash/internal/resource"
)

// Client lists contexts, namespaces and resources through kubectl.
// It implements the read side of domain.KubeGateway.
type Client struct {
	runner Runner
	logger *slog.Logger
	now    func() time.Time
}

var (
	_ domain.ContextRepository   = (*Client)(nil)
	_ domain.NamespaceRepository = (*Client)(nil)
	_ domain.ResourceRepository  = (*Client)(nil)
)

func NewClient(runner Runner, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{runner: runner, logger: logger, now: time.Now}
}

// ListContexts returns every kubeconfig context, flagging the current one.
// A missing current context is not an error.
func (c *Client) ListContexts(ctx context.Context) ([]domain.ContextInfo, error) {
	res, err := c.runner.Run(ctx, "config", "get-contexts", "-o", "name")
	if err != nil {
		return nil, err
	}
	if res.Failed() {
		err := failure(res)
		c.logger.Warn("list contexts failed", logging.Err(err))
		return nil, err
	}

	current := ""
	if cur, err := c.runner.Run(ctx, "config", "current-context"); err == nil && !cur.Failed() {
		current = strings.TrimSpace(string(cur.Stdout))
	}

	var contexts []domain.ContextInfo
	for _, line := range strings.Split(string(res.Stdout), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		contexts = append(contexts, domain.ContextInfo{Name: name, Current: name == current})
	}
	return contexts, nil
}

// ListNamespaces returns the namespaces of kubeContext sorted by name.
func (c *Client) ListNamespaces(ctx context.Context, kubeContext string) ([]domain.NamespaceInfo, error) {
	res, err := c.runner.Run(ctx, Scoped(kubeContext, "", "get", "namespaces", "-o", "json")...)
	if err != nil {
		return nil, err
	}
	if res.Failed() {
		err := failure(res)
		c.logger.Warn("list namespaces failed", logging.Context(kubeContext), logging.Err(err))
		return nil, err
	}

	var list corev1.NamespaceList
	if err := yaml.Unmarshal(res.Stdout, &list); err != nil {
		return nil, decodeError("namespaces", err)
	}

	now := c.now()
	namespaces := make([]domain.NamespaceInfo, 0, len(list.Items))
	for _, ns := range list.Items {
		namespaces = append(namespaces, domain.NamespaceInfo{
			Name:   ns.Name,
			Status: string(ns.Status.Phase),
			Age:    resource.Age(ns.CreationTimestamp, now),
		})
	}
	sort.Slice(namespaces, func(i, j int) bool {
		return namespaces[i].Name < namespaces[j].Name
	})
	return namespaces, nil
}

// ListResources fetches one kind in one namespace and projects it to a table.
func (c *Client) ListResources(ctx context.Context, kubeContext, namespace string, kind domain.Kind) (domain.TableView, error) {
	res, err := c.runner.Run(ctx, Scoped(kubeContext, namespace, "get", kind.Plural(), "-o", "json")...)
	if err != nil {
		return domain.TableView{}, err
	}
	if res.Failed() {
		err := failure(res)
		c.logger.Warn("list resources failed",
			logging.Context(kubeContext),
			logging.Namespace(namespace),
			logging.Kind(kind),
			logging.Err(err),
		)
		return domain.TableView{}, err
	}

	objs, err := resource.Decode(kind, res.Stdout)
	if err != nil {
		return domain.TableView{}, decodeError(kind.Plural(), err)
	}
	return resource.Project(kind, namespace, objs, c.now()), nil
}

func decodeError(what string, err error) error {
	return &domain.ToolError{
		Type:    domain.ErrDecode,
		Message: fmt.Sprintf("Error loading %s: %v", what, err),
		Err:     err,
	}
}
