// Package resource projects decoded kubectl list output into display tables
// and knows which operations each kind offers.
package resource

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/Taishi66/kubedash/internal/domain"
)

// kindSpec describes everything kind-specific: the column schema, how to
// decode a list, how to summarise one object, and the operation menu.
type kindSpec struct {
	columns   []string
	decode    func(data []byte) ([]metav1.Object, error)
	summarize func(obj metav1.Object, now time.Time) domain.ResourceSummary
	ops       []domain.Operation
}

var (
	opDescribe      = domain.Operation{Verb: domain.VerbDescribe, Label: "Describe"}
	opLogs          = domain.Operation{Verb: domain.VerbLogs, Label: "Logs"}
	opLogsPrevious  = domain.Operation{Verb: domain.VerbLogsPrevious, Label: "Logs (previous)"}
	opPortForward   = domain.Operation{Verb: domain.VerbPortForward, Label: "Port forward"}
	opExec          = domain.Operation{Verb: domain.VerbExec, Label: "Exec shell"}
	opEdit          = domain.Operation{Verb: domain.VerbEdit, Label: "Edit"}
	opDelete        = domain.Operation{Verb: domain.VerbDelete, Label: "Delete"}
	opScale         = domain.Operation{Verb: domain.VerbScale, Label: "Scale"}
	opRestart       = domain.Operation{Verb: domain.VerbRestart, Label: "Restart"}
	opRolloutStatus = domain.Operation{Verb: domain.VerbRolloutStatus, Label: "Rollout status"}
	opViewData      = domain.Operation{Verb: domain.VerbViewData, Label: "View data"}
)

// fallbackOps is offered for kinds missing from the table.
var fallbackOps = []domain.Operation{opDescribe, opEdit, opDelete}

var kinds = map[domain.Kind]kindSpec{
	domain.KindPod: {
		columns:   []string{"Name", "Ready", "Status", "Restarts", "Age"},
		decode:    decodePods,
		summarize: summarizePod,
		ops:       []domain.Operation{opDescribe, opLogs, opLogsPrevious, opPortForward, opExec, opEdit, opDelete},
	},
	domain.KindService: {
		columns:   []string{"Name", "Type", "Cluster-IP", "External-IP", "Port(s)"},
		decode:    decodeServices,
		summarize: summarizeService,
		ops:       []domain.Operation{opDescribe, opPortForward, opEdit, opDelete},
	},
	domain.KindDeployment: {
		columns:   []string{"Name", "Ready", "Up-to-date", "Available", "Age"},
		decode:    decodeDeployments,
		summarize: summarizeDeployment,
		ops:       []domain.Operation{opDescribe, opScale, opRestart, opRolloutStatus, opEdit, opDelete},
	},
	domain.KindConfigMap: {
		columns:   []string{"Name", "Data", "Age"},
		decode:    decodeConfigMaps,
		summarize: summarizeConfigMap,
		ops:       []domain.Operation{opDescribe, opViewData, opEdit, opDelete},
	},
	domain.KindSecret: {
		columns:   []string{"Name", "Data", "Age"},
		decode:    decodeSecrets,
		summarize: summarizeSecret,
		ops:       []domain.Operation{opDescribe, opViewData, opEdit, opDelete},
	},
}

// OperationsFor returns the operation menu of kind. The result is a fresh
// slice; callers may modify it.
func OperationsFor(kind domain.Kind) []domain.Operation {
	spec, ok := kinds[kind]
	if !ok {
		return append([]domain.Operation(nil), fallbackOps...)
	}
	return append([]domain.Operation(nil), spec.ops...)
}
