// YAML config loader with CUE validation integration
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable consulted when no --config flag is given.
const PathEnv = "WEBHOOK_LAB_CONFIG"

//go:embed schema.cue
var schemaCUE []byte

// Timings holds every simulated delay. Durations are Go duration strings in YAML.
type Timings struct {
	PollInterval        time.Duration `yaml:"poll_interval"`
	PollEvaluateDelay   time.Duration `yaml:"poll_evaluate_delay"`
	WebhookDeliverDelay time.Duration `yaml:"webhook_deliver_delay"`
	WebhookSettleDelay  time.Duration `yaml:"webhook_settle_delay"`
	LifecycleStepDelay  time.Duration `yaml:"lifecycle_step_delay"`
	SecurityVerifyDelay time.Duration `yaml:"security_verify_delay"`
	SecurityFastDelay   time.Duration `yaml:"security_fast_delay"`
	QueueTick           time.Duration `yaml:"queue_tick"`
	QueueWorkDelay      time.Duration `yaml:"queue_work_delay"`
	TUIFrame            time.Duration `yaml:"tui_frame"`
}

// Queue sizes the architecture simulator.
type Queue struct {
	Workers   int `yaml:"workers"`
	FloodSize int `yaml:"flood_size"`
}

// LabConfig is the root configuration.
type LabConfig struct {
	Timings Timings `yaml:"timings"`
	Queue   Queue   `yaml:"queue"`
}

// Default returns the built-in configuration.
func Default() *LabConfig {
	return &LabConfig{
		Timings: Timings{
			PollInterval:        1500 * time.Millisecond,
			PollEvaluateDelay:   800 * time.Millisecond,
			WebhookDeliverDelay: 1200 * time.Millisecond,
			WebhookSettleDelay:  2000 * time.Millisecond,
			LifecycleStepDelay:  1500 * time.Millisecond,
			SecurityVerifyDelay: 600 * time.Millisecond,
			SecurityFastDelay:   300 * time.Millisecond,
			QueueTick:           500 * time.Millisecond,
			QueueWorkDelay:      1000 * time.Millisecond,
			TUIFrame:            100 * time.Millisecond,
		},
		Queue: Queue{
			Workers:   3,
			FloodSize: 10,
		},
	}
}

// Load reads a YAML config file, validates it against the embedded CUE schema
// and overlays it on the defaults. An empty path returns the defaults.
func Load(path string) (*LabConfig, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse validates and decodes YAML config bytes. name is used in error messages.
func Parse(name string, data []byte) (*LabConfig, error) {
	if err := ValidateWithCue(name, data, schemaCUE, "#Config"); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks the constraints the schema cannot express: every timing is
// positive and a poll cycle outlasts its evaluation.
func (c *LabConfig) Validate() error {
	t := c.Timings
	timings := []struct {
		name string
		d    time.Duration
	}{
		{"poll_interval", t.PollInterval},
		{"poll_evaluate_delay", t.PollEvaluateDelay},
		{"webhook_deliver_delay", t.WebhookDeliverDelay},
		{"webhook_settle_delay", t.WebhookSettleDelay},
		{"lifecycle_step_delay", t.LifecycleStepDelay},
		{"security_verify_delay", t.SecurityVerifyDelay},
		{"security_fast_delay", t.SecurityFastDelay},
		{"queue_tick", t.QueueTick},
		{"queue_work_delay", t.QueueWorkDelay},
		{"tui_frame", t.TUIFrame},
	}
	for _, tm := range timings {
		if tm.d <= 0 {
			return fmt.Errorf("timings.%s must be positive, got %s", tm.name, tm.d)
		}
	}
	if t.PollInterval <= t.PollEvaluateDelay {
		return fmt.Errorf("timings.poll_interval (%s) must exceed poll_evaluate_delay (%s)", t.PollInterval, t.PollEvaluateDelay)
	}
	return nil
}

// ResolvePath picks the flag value, then WEBHOOK_LAB_CONFIG, then nothing.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(PathEnv)
}
