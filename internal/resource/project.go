package resource

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/duration"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/Taishi66/kubedash/internal/domain"
)

// Project builds the table for one decoded list. An empty list yields a single
// informational row and no items.
func Project(kind domain.Kind, namespace string, objs []metav1.Object, now time.Time) domain.TableView {
	if len(objs) == 0 {
		return MessageTable(kind, fmt.Sprintf("No %s found in namespace %s", kind.Plural(), namespace))
	}

	spec, ok := kinds[kind]
	if !ok {
		return ErrorTable(kind, fmt.Sprintf("unsupported kind %v", kind))
	}

	view := domain.TableView{
		Kind:    kind,
		Columns: spec.columns,
		Rows:    make([][]string, 0, len(objs)),
		Items:   make([]domain.ResourceSummary, 0, len(objs)),
	}
	for _, obj := range objs {
		s := spec.summarize(obj, now)
		s.Kind = kind
		view.Items = append(view.Items, s)
		view.Rows = append(view.Rows, s.Cells)
	}
	return view
}

// MessageTable is a one-cell table carrying an informational message.
func MessageTable(kind domain.Kind, msg string) domain.TableView {
	return domain.TableView{Kind: kind, Columns: []string{"Message"}, Rows: [][]string{{msg}}}
}

// ErrorTable is a one-cell table carrying an error message.
func ErrorTable(kind domain.Kind, msg string) domain.TableView {
	return domain.TableView{Kind: kind, Columns: []string{"Error"}, Rows: [][]string{{msg}}}
}

// Age renders the time since ts the way kubectl does. A zero timestamp is
// "Unknown".
func Age(ts metav1.Time, now time.Time) string {
	if ts.IsZero() {
		return "Unknown"
	}
	return duration.HumanDuration(now.Sub(ts.Time))
}

func summarizePod(obj metav1.Object, now time.Time) domain.ResourceSummary {
	pod := obj.(*corev1.Pod)
	statuses := pod.Status.ContainerStatuses

	ready := lo.CountBy(statuses, func(cs corev1.ContainerStatus) bool { return cs.Ready })
	restarts := lo.SumBy(statuses, func(cs corev1.ContainerStatus) int32 { return cs.RestartCount })
	phase := string(pod.Status.Phase)
	if phase == "" {
		phase = "Unknown"
	}

	ports := lo.FlatMap(pod.Spec.Containers, func(c corev1.Container, _ int) []int32 {
		return lo.Map(c.Ports, func(p corev1.ContainerPort, _ int) int32 { return p.ContainerPort })
	})

	return domain.ResourceSummary{
		Name: pod.Name,
		Cells: []string{
			pod.Name,
			fmt.Sprintf("%d/%d", ready, len(statuses)),
			phase,
			strconv.Itoa(int(restarts)),
			Age(pod.CreationTimestamp, now),
		},
		Containers: len(pod.Spec.Containers),
		Ports:      ports,
	}
}

func summarizeService(obj metav1.Object, now time.Time) domain.ResourceSummary {
	svc := obj.(*corev1.Service)

	svcType := string(svc.Spec.Type)
	if svcType == "" {
		svcType = string(corev1.ServiceTypeClusterIP)
	}
	clusterIP := svc.Spec.ClusterIP
	if clusterIP == "" {
		clusterIP = "None"
	}

	return domain.ResourceSummary{
		Name: svc.Name,
		Cells: []string{
			svc.Name,
			svcType,
			clusterIP,
			externalAddress(svc, svcType),
			servicePorts(svc.Spec.Ports),
		},
		Ports: lo.Map(svc.Spec.Ports, func(p corev1.ServicePort, _ int) int32 { return p.Port }),
	}
}

// externalAddress prefers explicit external IPs, then the first load balancer
// ingress entry.
func externalAddress(svc *corev1.Service, svcType string) string {
	if len(svc.Spec.ExternalIPs) > 0 {
		return strings.Join(svc.Spec.ExternalIPs, ",")
	}
	if svcType != string(corev1.ServiceTypeLoadBalancer) {
		return "None"
	}
	ingress := svc.Status.LoadBalancer.Ingress
	if len(ingress) == 0 {
		return "Pending"
	}
	switch {
	case ingress[0].IP != "":
		return ingress[0].IP
	case ingress[0].Hostname != "":
		return ingress[0].Hostname
	default:
		return "Pending"
	}
}

func servicePorts(ports []corev1.ServicePort) string {
	if len(ports) == 0 {
		return "None"
	}
	return strings.Join(lo.Map(ports, func(p corev1.ServicePort, _ int) string {
		s := strconv.Itoa(int(p.Port))
		if !targetPortUnset(p.TargetPort) {
			s += ":" + p.TargetPort.String()
		}
		if p.Protocol != "" {
			s += "/" + string(p.Protocol)
		}
		return s
	}), ",")
}

func targetPortUnset(tp intstr.IntOrString) bool {
	if tp.Type == intstr.String {
		return tp.StrVal == ""
	}
	return tp.IntVal == 0
}

func summarizeDeployment(obj metav1.Object, now time.Time) domain.ResourceSummary {
	dep := obj.(*appsv1.Deployment)
	replicas := lo.FromPtr(dep.Spec.Replicas)

	return domain.ResourceSummary{
		Name: dep.Name,
		Cells: []string{
			dep.Name,
			fmt.Sprintf("%d/%d", dep.Status.ReadyReplicas, replicas),
			strconv.Itoa(int(dep.Status.UpdatedReplicas)),
			strconv.Itoa(int(dep.Status.AvailableReplicas)),
			Age(dep.CreationTimestamp, now),
		},
		Replicas: replicas,
	}
}

func summarizeConfigMap(obj metav1.Object, now time.Time) domain.ResourceSummary {
	cm := obj.(*corev1.ConfigMap)
	return dataSummary(cm.Name, len(cm.Data), cm.CreationTimestamp, now)
}

func summarizeSecret(obj metav1.Object, now time.Time) domain.ResourceSummary {
	secret := obj.(*corev1.Secret)
	return dataSummary(secret.Name, len(secret.Data), secret.CreationTimestamp, now)
}

func dataSummary(name string, entries int, created metav1.Time, now time.Time) domain.ResourceSummary {
	return domain.ResourceSummary{
		Name:  name,
		Cells: []string{name, strconv.Itoa(entries), Age(created, now)},
	}
}
