package domain

// ContextInfo is a kubeconfig context as reported by kubectl.
type ContextInfo struct {
	Name    string
	Current bool
}

// NamespaceInfo represents a Kubernetes namespace for display in the TUI.
type NamespaceInfo struct {
	Name   string
	Status string
	Age    string
}

// Kind is one of the resource kinds the dashboard understands.
type Kind int

const (
	KindPod Kind = iota
	KindService
	KindDeployment
	KindConfigMap
	KindSecret
)

// Kinds lists every supported kind in tab order.
var Kinds = []Kind{KindPod, KindService, KindDeployment, KindConfigMap, KindSecret}

func (k Kind) String() string {
	switch k {
	case KindPod:
		return "Pod"
	case KindService:
		return "Service"
	case KindDeployment:
		return "Deployment"
	case KindConfigMap:
		return "ConfigMap"
	case KindSecret:
		return "Secret"
	default:
		return "Unknown"
	}
}

// Plural is the kubectl resource name used with `get`.
func (k Kind) Plural() string {
	switch k {
	case KindPod:
		return "pods"
	case KindService:
		return "services"
	case KindDeployment:
		return "deployments"
	case KindConfigMap:
		return "configmaps"
	case KindSecret:
		return "secrets"
	default:
		return ""
	}
}

// Singular is the lower-case kubectl type used in `type/name` references.
func (k Kind) Singular() string {
	switch k {
	case KindPod:
		return "pod"
	case KindService:
		return "service"
	case KindDeployment:
		return "deployment"
	case KindConfigMap:
		return "configmap"
	case KindSecret:
		return "secret"
	default:
		return ""
	}
}

// ResourceSummary is one listed resource instance. Cells line up with the
// column schema of its kind; the remaining fields feed the dispatcher.
type ResourceSummary struct {
	Kind  Kind
	Name  string
	Cells []string

	Replicas   int32   // deployments: desired replicas
	Containers int     // pods: number of containers in the spec
	Ports      []int32 // pods: container ports, services: service ports
}

// TableView is the projected form of one resource list.
// Items is empty when Rows holds an informational or error row.
type TableView struct {
	Kind    Kind
	Columns []string
	Rows    [][]string
	Items   []ResourceSummary
}

// Verb tags an operation.
type Verb int

const (
	VerbDescribe Verb = iota
	VerbLogs
	VerbLogsPrevious
	VerbEdit
	VerbDelete
	VerbScale
	VerbRestart
	VerbRolloutStatus
	VerbViewData
	VerbPortForward
	VerbExec
)

func (v Verb) String() string {
	switch v {
	case VerbDescribe:
		return "describe"
	case VerbLogs:
		return "logs"
	case VerbLogsPrevious:
		return "logs_previous"
	case VerbEdit:
		return "edit"
	case VerbDelete:
		return "delete"
	case VerbScale:
		return "scale"
	case VerbRestart:
		return "restart"
	case VerbRolloutStatus:
		return "rollout_status"
	case VerbViewData:
		return "view_data"
	case VerbPortForward:
		return "port_forward"
	case VerbExec:
		return "exec"
	default:
		return "unknown"
	}
}

// Operation is an action offered in the operation menu.
type Operation struct {
	Verb  Verb
	Label string
}

// Target identifies the resource an operation runs against.
type Target struct {
	Context   string
	Namespace string
	Resource  ResourceSummary
}

// Ref renders the kubectl `type/name` reference.
func (t Target) Ref() string {
	return t.Resource.Kind.Singular() + "/" + t.Resource.Name
}

// DisplayResult is what the result view shows after an operation.
type DisplayResult struct {
	Title   string
	Body    string
	Command string // command line to copy; empty for pure output
	Failed  bool
}
