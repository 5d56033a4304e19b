package resource

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/Taishi66/kubedash/internal/domain"
)

// Decode parses the JSON (or YAML) list printed by `kubectl get <plural>`.
// Objects keep their input order.
func Decode(kind domain.Kind, data []byte) ([]metav1.Object, error) {
	spec, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported kind %v", kind)
	}
	return spec.decode(data)
}

func decodeList[T any, PT interface {
	*T
	metav1.Object
}](data []byte) ([]metav1.Object, error) {
	var list struct {
		Items []T `json:"items"`
	}
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	objs := make([]metav1.Object, 0, len(list.Items))
	for i := range list.Items {
		objs = append(objs, PT(&list.Items[i]))
	}
	return objs, nil
}

var (
	decodePods        = decodeList[corev1.Pod, *corev1.Pod]
	decodeServices    = decodeList[corev1.Service, *corev1.Service]
	decodeDeployments = decodeList[appsv1.Deployment, *appsv1.Deployment]
	decodeConfigMaps  = decodeList[corev1.ConfigMap, *corev1.ConfigMap]
	decodeSecrets     = decodeList[corev1.Secret, *corev1.Secret]
)
