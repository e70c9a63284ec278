package types

import "time"

// HTTPConfig holds shared HTTP settings used by capability clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-analyzer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OrchestratorConfig holds settings for the task orchestrator.
type OrchestratorConfig struct {
	// Workers bounds the worker pool that fans out tasks (default 4).
	// The pool also bounds abandoned work left behind by timed-out tasks.
	Workers int `json:"workers" yaml:"workers"`

	// TaskTimeout is the per-task deadline (default 10s). A task past its
	// deadline is recorded as timed_out and its late result discarded.
	TaskTimeout time.Duration `json:"task_timeout" yaml:"task_timeout"`
}

// CacheConfig holds settings for the fingerprint result cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database (default "cache").
	Dir string `json:"dir" yaml:"dir"`

	// TTL is the maximum entry age before it is treated as expired
	// (default 24h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Disabled turns the cache off; every task recomputes.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// CapabilityBackend selects the analysis capability implementation.
type CapabilityBackend string

const (
	// BackendLexical is the built-in deterministic implementation.
	BackendLexical CapabilityBackend = "lexical"

	// BackendInference calls an external model-serving HTTP endpoint.
	BackendInference CapabilityBackend = "inference"
)

// CapabilityConfig holds settings for the external analysis capabilities.
type CapabilityConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend selects the capability implementation: lexical or inference.
	Backend CapabilityBackend `json:"backend" yaml:"backend"`

	// Endpoint is the base URL of the model-serving API (inference backend).
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// APIKey authenticates against the inference endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited calls
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ReportConfig holds settings for report output.
type ReportConfig struct {
	// Format selects the export format: yaml or json (default yaml).
	Format string `json:"format" yaml:"format"`

	// OutputDir is the directory for written reports (default "reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Config groups all analyzer configuration.
type Config struct {
	Orchestrator OrchestratorConfig `json:"orchestrator" yaml:"orchestrator"`
	Cache        CacheConfig        `json:"cache" yaml:"cache"`
	Capability   CapabilityConfig   `json:"capability" yaml:"capability"`
	Report       ReportConfig       `json:"report" yaml:"report"`
}
