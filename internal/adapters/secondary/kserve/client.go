// Package kserve deploys registered inference services as KServe
// InferenceService custom resources through the dynamic client. The adapter
// is optional; when Kubernetes integration is disabled the deployer reports
// itself unavailable and the registry works as a plain catalog.
package kserve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"mlops-hub-backend/internal/config"
	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

var inferenceServiceGVR = schema.GroupVersionResource{
	Group:    "serving.kserve.io",
	Version:  "v1beta1",
	Resource: "inferenceservices",
}

type kserveDeployer struct {
	client    dynamic.Interface
	enabled   bool
	defaultNS string
}

func NewDeployer(cfg *config.KubernetesConfig) (ports.Deployer, error) {
	if !cfg.Enabled {
		return &kserveDeployer{enabled: false}, nil
	}

	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	defaultNS := cfg.Namespace
	if defaultNS == "" {
		defaultNS = "model-serving"
	}

	return &kserveDeployer{
		client:    client,
		enabled:   true,
		defaultNS: defaultNS,
	}, nil
}

func (d *kserveDeployer) IsAvailable() bool {
	return d.enabled
}

func (d *kserveDeployer) Deploy(ctx context.Context, svc *domain.InferenceService) error {
	namespace := svc.Namespace
	if namespace == "" {
		namespace = d.defaultNS
	}

	obj := d.buildInferenceServiceCR(svc)

	_, err := d.client.Resource(inferenceServiceGVR).
		Namespace(namespace).
		Create(ctx, obj, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create kserve inferenceservice: %w", err)
	}
	return nil
}

func (d *kserveDeployer) Undeploy(ctx context.Context, namespace, name string) error {
	if namespace == "" {
		namespace = d.defaultNS
	}

	err := d.client.Resource(inferenceServiceGVR).
		Namespace(namespace).
		Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return fmt.Errorf("delete kserve inferenceservice: %w", err)
	}
	return nil
}

func (d *kserveDeployer) Status(ctx context.Context, namespace, name string) (*ports.DeploymentStatus, error) {
	if namespace == "" {
		namespace = d.defaultNS
	}

	obj, err := d.client.Resource(inferenceServiceGVR).
		Namespace(namespace).
		Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get kserve inferenceservice: %w", err)
	}

	return parseStatus(obj), nil
}

func (d *kserveDeployer) buildInferenceServiceCR(svc *domain.InferenceService) *unstructured.Unstructured {
	labels := map[string]interface{}{
		"mlopshub.ai-platform/inference-service-id": strconv.FormatInt(svc.ID, 10),
	}

	container := map[string]interface{}{
		"name":  "kserve-container",
		"image": svc.Image,
	}
	if svc.Port > 0 {
		container["ports"] = []interface{}{
			map[string]interface{}{"containerPort": int64(svc.Port)},
		}
	}
	if svc.CPU != "" || svc.Memory != "" {
		limits := map[string]interface{}{}
		if svc.CPU != "" {
			limits["cpu"] = svc.CPU
		}
		if svc.Memory != "" {
			limits["memory"] = svc.Memory
		}
		container["resources"] = map[string]interface{}{"limits": limits}
	}

	predictor := map[string]interface{}{
		"containers": []interface{}{container},
	}
	if svc.Replicas > 0 {
		predictor["minReplicas"] = int64(svc.Replicas)
	}

	return &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": "serving.kserve.io/v1beta1",
			"kind":       "InferenceService",
			"metadata": map[string]interface{}{
				"name":   svc.Name,
				"labels": labels,
			},
			"spec": map[string]interface{}{
				"predictor": predictor,
			},
		},
	}
}

func parseStatus(obj *unstructured.Unstructured) *ports.DeploymentStatus {
	status := &ports.DeploymentStatus{}

	statusMap, found, _ := unstructured.NestedMap(obj.Object, "status")
	if !found {
		return status
	}

	status.URL, _, _ = unstructured.NestedString(statusMap, "url")

	conditions, found, _ := unstructured.NestedSlice(statusMap, "conditions")
	if found {
		for _, cond := range conditions {
			condMap, ok := cond.(map[string]interface{})
			if !ok {
				continue
			}
			condType, _ := condMap["type"].(string)
			condStatus, _ := condMap["status"].(string)

			if condType == "Ready" {
				status.Ready = condStatus == "True"
				break
			}
		}
	}

	return status
}

var _ ports.Deployer = (*kserveDeployer)(nil)
