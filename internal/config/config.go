package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var DefaultProdPatterns = []string{"prod", "production", "prd", "live"}

const (
	DefaultKubectl   = "kubectl"
	DefaultTailLines = 200
	DefaultShell     = "/bin/sh"
	DefaultLogLevel  = "info"
)

// AppConfig holds all configuration for kubedash.
type AppConfig struct {
	Kubectl            string     `yaml:"kubectl"`
	ProdPatterns       []string   `yaml:"prod_patterns"`
	ReadonlyNamespaces []string   `yaml:"readonly_namespaces"`
	Logs               LogsConfig `yaml:"logs"`
	Exec               ExecConfig `yaml:"exec"`
	Log                LogConfig  `yaml:"log"`
}

// LogsConfig controls the pod logs operation.
type LogsConfig struct {
	TailLines int64 `yaml:"tail_lines"`
}

// ExecConfig holds exec/shell settings.
type ExecConfig struct {
	Shell string `yaml:"shell"`
}

// LogConfig controls kubedash's own diagnostic log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Kubectl:      DefaultKubectl,
		ProdPatterns: DefaultProdPatterns,
		Logs:         LogsConfig{TailLines: DefaultTailLines},
		Exec:         ExecConfig{Shell: DefaultShell},
		Log:          LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/kubedash/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "kubedash", "config.yaml")
}

// LoadConfigFrom loads config from a specific file path.
// Returns defaults if the file does not exist.
func LoadConfigFrom(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Apply defaults for zero values
	if strings.TrimSpace(cfg.Kubectl) == "" {
		cfg.Kubectl = DefaultKubectl
	}
	if len(cfg.ProdPatterns) == 0 {
		cfg.ProdPatterns = DefaultProdPatterns
	}
	if cfg.Logs.TailLines <= 0 {
		cfg.Logs.TailLines = DefaultTailLines
	}
	if cfg.Exec.Shell == "" {
		cfg.Exec.Shell = DefaultShell
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	return cfg, nil
}

// IsReadonlyNamespace checks if a namespace matches any readonly pattern.
// Supports glob matching (e.g. "kube-*").
func IsReadonlyNamespace(namespace string, patterns []string) bool {
	if namespace == "" || len(patterns) == 0 {
		return false
	}
	for _, p := range patterns {
		matched, err := filepath.Match(p, namespace)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// IsProdNamespace checks if a namespace name matches production patterns.
// Matching is done by segment (split on -._) so "product-api" does not
// match "prod".
func IsProdNamespace(namespace string, patterns []string) bool {
	if len(patterns) == 0 {
		patterns = DefaultProdPatterns
	}
	segments := splitSegments(strings.ToLower(namespace))

	for _, p := range patterns {
		p = strings.ToLower(p)
		for _, seg := range segments {
			if seg == p {
				return true
			}
		}
	}
	return false
}

func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '.' || r == '_'
	})
}
