package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvPipelineHistoryCap    = "PROMPTMASTER_PIPELINE_HISTORY_CAP"
	EnvPipelineKnowledgePath = "PROMPTMASTER_PIPELINE_KNOWLEDGE_PATH"
)

// PipelineConfig holds pipeline-level settings: the per-caller history
// retention cap and the knowledge corpus document path. An empty path means
// the built-in fragment set is used.
type PipelineConfig struct {
	HistoryCap    int    `toml:"history_cap"`
	KnowledgePath string `toml:"knowledge_path"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.HistoryCap != 0 {
		c.HistoryCap = overlay.HistoryCap
	}
	if overlay.KnowledgePath != "" {
		c.KnowledgePath = overlay.KnowledgePath
	}
}

func (c *PipelineConfig) loadDefaults() {
	if c.HistoryCap == 0 {
		c.HistoryCap = 10
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineHistoryCap); v != "" {
		if cap, err := strconv.Atoi(v); err == nil {
			c.HistoryCap = cap
		}
	}
	if v := os.Getenv(EnvPipelineKnowledgePath); v != "" {
		c.KnowledgePath = v
	}
}

func (c *PipelineConfig) validate() error {
	if c.HistoryCap < 1 {
		return fmt.Errorf("invalid history_cap: %d", c.HistoryCap)
	}
	return nil
}
