package domain

import "context"

// ContextRepository enumerates kubeconfig contexts.
type ContextRepository interface {
	ListContexts(ctx context.Context) ([]ContextInfo, error)
}

// NamespaceRepository lists namespaces of one context.
type NamespaceRepository interface {
	ListNamespaces(ctx context.Context, kubeContext string) ([]NamespaceInfo, error)
}

// ResourceRepository lists and projects resources of one kind.
type ResourceRepository interface {
	ListResources(ctx context.Context, kubeContext, namespace string, kind Kind) (TableView, error)
}

// OperationExecutor runs an operation against a resource.
// A non-nil error means the tool could not be invoked at all.
type OperationExecutor interface {
	Execute(ctx context.Context, target Target, verb Verb) (DisplayResult, error)
}

// KubeGateway is the primary port combining all cluster operations.
// The TUI depends on this interface, not on concrete implementations.
type KubeGateway interface {
	ContextRepository
	NamespaceRepository
	ResourceRepository
	OperationExecutor
}
