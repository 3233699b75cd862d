package agent

import (
	"context"

	"bigpicture_agent/pkg/core/config"
	"bigpicture_agent/pkg/core/llm"
)

// Config selects which provider answers for which agent, loaded from
// config/models.yaml.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig is a per-agent override of the global provider choice.
type AgentConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// Manager routes agent types to LLM providers. Credentials come from the
// process configuration, not from globals, so tests can inject fakes.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

// NewManager builds the provider table from the app configuration.
func NewManager(cfg Config, creds *config.Config) *Manager {
	if cfg.ActiveProvider == "" {
		cfg.ActiveProvider = "openai"
	}
	return &Manager{
		config: cfg,
		providers: map[string]llm.Provider{
			"openai":   &llm.OpenAIProvider{APIKey: creds.OpenAIKey},
			"deepseek": &llm.DeepSeekProvider{APIKey: creds.DeepSeekKey},
			"gemini":   &llm.GeminiProvider{APIKey: creds.GeminiKey},
			"qwen":     &llm.QwenProvider{APIKey: creds.QwenKey},
		},
	}
}

// GetProvider resolves the provider for an agent type: per-agent override
// first, then the global active provider, then openai.
func (m *Manager) GetProvider(agentType string) llm.Provider {
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["openai"]
}

// RegisterProvider replaces a provider implementation. Used by tests to wire
// in fakes.
func (m *Manager) RegisterProvider(name string, p llm.Provider) {
	m.providers[name] = p
}

// GetActiveProvider returns the name of the globally active provider.
func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// ExecutePrompt adapts instructions for the chosen model and requests a
// completion.
func (m *Manager) ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(agentType)

	if options == nil {
		options = map[string]interface{}{}
	}
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Model != "" {
		if _, set := options["model"]; !set {
			options["model"] = agentConfig.Model
		}
	}

	adaptedSystemPrompt := provider.AdaptInstructions(rawSystemPrompt)
	return provider.GenerateResponse(ctx, rawPrompt, adaptedSystemPrompt, options)
}
