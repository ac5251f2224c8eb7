package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// AgentEnv maps agent config fields to environment variable names.
type AgentEnv struct {
	ProviderName string
	BaseURL      string
	Token        string
	Deployment   string
	APIVersion   string
	AuthType     string
	ModelName    string
}

var routerEnv = &AgentEnv{
	ProviderName: "PROMPTMASTER_ROUTER_PROVIDER_NAME",
	BaseURL:      "PROMPTMASTER_ROUTER_BASE_URL",
	Token:        "PROMPTMASTER_ROUTER_TOKEN",
	Deployment:   "PROMPTMASTER_ROUTER_DEPLOYMENT",
	APIVersion:   "PROMPTMASTER_ROUTER_API_VERSION",
	AuthType:     "PROMPTMASTER_ROUTER_AUTH_TYPE",
	ModelName:    "PROMPTMASTER_ROUTER_MODEL_NAME",
}

var evaluatorEnv = &AgentEnv{
	ProviderName: "PROMPTMASTER_EVALUATOR_PROVIDER_NAME",
	BaseURL:      "PROMPTMASTER_EVALUATOR_BASE_URL",
	Token:        "PROMPTMASTER_EVALUATOR_TOKEN",
	Deployment:   "PROMPTMASTER_EVALUATOR_DEPLOYMENT",
	APIVersion:   "PROMPTMASTER_EVALUATOR_API_VERSION",
	AuthType:     "PROMPTMASTER_EVALUATOR_AUTH_TYPE",
	ModelName:    "PROMPTMASTER_EVALUATOR_MODEL_NAME",
}

// AgentsConfig holds the two go-agents configurations the pipeline uses:
// the router agent for classification and the evaluator agent for scoring.
// The router is typically a smaller, faster model.
type AgentsConfig struct {
	Router    gaconfig.AgentConfig `toml:"router"`
	Evaluator gaconfig.AgentConfig `toml:"evaluator"`
}

// Finalize applies the three-phase finalize pattern to both agent configs.
func (c *AgentsConfig) Finalize() error {
	if err := finalizeAgent(&c.Router, "router", routerEnv); err != nil {
		return fmt.Errorf("router: %w", err)
	}
	if err := finalizeAgent(&c.Evaluator, "evaluator", evaluatorEnv); err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay for both agent configs.
func (c *AgentsConfig) Merge(overlay *AgentsConfig) {
	c.Router.Merge(&overlay.Router)
	c.Evaluator.Merge(&overlay.Evaluator)
}

func finalizeAgent(c *gaconfig.AgentConfig, name string, env *AgentEnv) error {
	loadAgentDefaults(c, name)
	loadAgentEnv(c, env)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig, name string) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults

	if c.Name == "" {
		c.Name = name
	}
}

func loadAgentEnv(c *gaconfig.AgentConfig, env *AgentEnv) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(env.ProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(env.BaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(env.ModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(env.Token, "token")
	setOption(env.Deployment, "deployment")
	setOption(env.APIVersion, "api_version")
	setOption(env.AuthType, "auth_type")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
