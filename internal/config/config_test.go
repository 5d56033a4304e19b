package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsProdNamespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		patterns  []string
		want      bool
	}{
		// Positive cases - segment matches
		{"exact prod", "prod", nil, true},
		{"segment prod", "my-app-prod", nil, true},
		{"exact production", "production", nil, true},
		{"segment production", "my-production-ns", nil, true},
		{"segment prd", "app-prd-01", nil, true},
		{"segment live", "live-env", nil, true},
		{"dot separator", "app.prod.ns", nil, true},
		{"underscore separator", "app_prod_ns", nil, true},

		// Case insensitive
		{"uppercase PROD", "MY-PROD-NS", nil, true},
		{"mixed case", "My-Prod-Namespace", nil, true},
		{"uppercase PRODUCTION", "PRODUCTION", nil, true},

		// Negative cases - no false positives
		{"dev namespace", "development", nil, false},
		{"staging", "staging", nil, false},
		{"test", "test-env", nil, false},
		{"empty namespace", "", nil, false},

		// Fixed: these were false positives before
		{"product-api NOT prod", "product-api", nil, false},
		{"reproduce NOT prod", "reproduce-bug", nil, false},
		{"productivity NOT prod", "productivity-tool", nil, false},
		{"livechat NOT live", "livechat-service", nil, false},

		// Custom patterns
		{"custom pattern match", "my-staging", []string{"staging"}, true},
		{"custom pattern no match", "my-dev", []string{"staging"}, false},
		{"empty custom patterns uses defaults", "production", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsProdNamespace(tt.namespace, tt.patterns)
			if got != tt.want {
				t.Errorf("IsProdNamespace(%q, %v) = %v, want %v", tt.namespace, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestIsProdNamespaceEmptyPatternsUsesDefaults(t *testing.T) {
	if !IsProdNamespace("production", []string{}) {
		t.Error("empty patterns should use defaults, but didn't match 'production'")
	}
}

// --- LoadConfig ---

func TestLoadConfig_Defaults(t *testing.T) {
	// Use a non-existent path so no file is loaded.
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFrom returned error: %v", err)
	}

	if cfg.Kubectl != "kubectl" {
		t.Errorf("Kubectl = %q, want kubectl", cfg.Kubectl)
	}
	if len(cfg.ProdPatterns) != len(DefaultProdPatterns) {
		t.Errorf("ProdPatterns len = %d, want %d", len(cfg.ProdPatterns), len(DefaultProdPatterns))
	}
	for i, p := range DefaultProdPatterns {
		if cfg.ProdPatterns[i] != p {
			t.Errorf("ProdPatterns[%d] = %q, want %q", i, cfg.ProdPatterns[i], p)
		}
	}
	if len(cfg.ReadonlyNamespaces) != 0 {
		t.Errorf("ReadonlyNamespaces should be empty, got %v", cfg.ReadonlyNamespaces)
	}
	if cfg.Logs.TailLines != 200 {
		t.Errorf("Logs.TailLines = %d, want 200", cfg.Logs.TailLines)
	}
	if cfg.Exec.Shell != "/bin/sh" {
		t.Errorf("Exec.Shell = %q, want /bin/sh", cfg.Exec.Shell)
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, want empty", cfg.Log.File)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadConfig_CustomFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `kubectl: /usr/local/bin/kubectl
prod_patterns:
  - staging
  - preprod
readonly_namespaces:
  - kube-system
  - openshift-*
logs:
  tail_lines: 500
exec:
  shell: /bin/bash
log:
  file: /tmp/kubedash.log
  level: debug
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFrom(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfigFrom returned error: %v", err)
	}

	if cfg.Kubectl != "/usr/local/bin/kubectl" {
		t.Errorf("Kubectl = %q", cfg.Kubectl)
	}
	if len(cfg.ProdPatterns) != 2 || cfg.ProdPatterns[0] != "staging" {
		t.Errorf("ProdPatterns = %v, want [staging preprod]", cfg.ProdPatterns)
	}
	if len(cfg.ReadonlyNamespaces) != 2 || cfg.ReadonlyNamespaces[0] != "kube-system" {
		t.Errorf("ReadonlyNamespaces = %v", cfg.ReadonlyNamespaces)
	}
	if cfg.Logs.TailLines != 500 {
		t.Errorf("Logs.TailLines = %d, want 500", cfg.Logs.TailLines)
	}
	if cfg.Exec.Shell != "/bin/bash" {
		t.Errorf("Exec.Shell = %q, want /bin/bash", cfg.Exec.Shell)
	}
	if cfg.Log.File != "/tmp/kubedash.log" || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadConfig_ZeroValuesGetDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `kubectl: ""
logs:
  tail_lines: -5
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFrom(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfigFrom returned error: %v", err)
	}
	if cfg.Kubectl != DefaultKubectl {
		t.Errorf("Kubectl = %q, want %q", cfg.Kubectl, DefaultKubectl)
	}
	if cfg.Logs.TailLines != DefaultTailLines {
		t.Errorf("Logs.TailLines = %d, want %d", cfg.Logs.TailLines, DefaultTailLines)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("{{invalid yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfigFrom(cfgPath)
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != "config.yaml" || filepath.Base(filepath.Dir(p)) != "kubedash" {
		t.Errorf("DefaultPath() = %q, want .../kubedash/config.yaml", p)
	}
}

func TestIsReadonlyNamespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		patterns  []string
		want      bool
	}{
		{"exact match", "kube-system", []string{"kube-system"}, true},
		{"glob match", "openshift-monitoring", []string{"openshift-*"}, true},
		{"no match", "my-app", []string{"kube-system", "openshift-*"}, false},
		{"empty patterns", "anything", nil, false},
		{"empty namespace", "", []string{"kube-system"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsReadonlyNamespace(tt.namespace, tt.patterns)
			if got != tt.want {
				t.Errorf("IsReadonlyNamespace(%q, %v) = %v, want %v", tt.namespace, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		input string
		want  int // number of segments
	}{
		{"my-app-prod", 3},
		{"app.prod.ns", 3},
		{"app_prod_ns", 3},
		{"app-v2.prod_env", 4},
		{"prod", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			segments := splitSegments(tt.input)
			if len(segments) != tt.want {
				t.Errorf("splitSegments(%q) = %v (len %d), want len %d", tt.input, segments, len(segments), tt.want)
			}
		})
	}
}
