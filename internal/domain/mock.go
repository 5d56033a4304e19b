package domain

import "context"

// MockGateway implements KubeGateway for testing.
type MockGateway struct {
	Contexts   []ContextInfo
	Namespaces []NamespaceInfo
	Tables     map[Kind]TableView
	Results    map[Verb]DisplayResult

	// Error injection
	ListContextsErr   error
	ListNamespacesErr error
	ListResourcesErr  error
	ExecuteErr        error

	// Call tracking
	NamespaceCalls []string
	ResourceCalls  []Kind
	Executed       []Verb
	LastTarget     Target
}

// Compile-time check.
var _ KubeGateway = (*MockGateway)(nil)

func (m *MockGateway) ListContexts(_ context.Context) ([]ContextInfo, error) {
	if m.ListContextsErr != nil {
		return nil, m.ListContextsErr
	}
	return m.Contexts, nil
}

func (m *MockGateway) ListNamespaces(_ context.Context, kubeContext string) ([]NamespaceInfo, error) {
	m.NamespaceCalls = append(m.NamespaceCalls, kubeContext)
	if m.ListNamespacesErr != nil {
		return nil, m.ListNamespacesErr
	}
	return m.Namespaces, nil
}

func (m *MockGateway) ListResources(_ context.Context, _, _ string, kind Kind) (TableView, error) {
	m.ResourceCalls = append(m.ResourceCalls, kind)
	if m.ListResourcesErr != nil {
		return TableView{}, m.ListResourcesErr
	}
	return m.Tables[kind], nil
}

func (m *MockGateway) Execute(_ context.Context, target Target, verb Verb) (DisplayResult, error) {
	m.Executed = append(m.Executed, verb)
	m.LastTarget = target
	if m.ExecuteErr != nil {
		return DisplayResult{}, m.ExecuteErr
	}
	return m.Results[verb], nil
}
