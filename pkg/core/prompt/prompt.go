// Package prompt is a small prompt library: templates live in code with an
// optional JSON directory override, so prompt wording can change without a
// rebuild.
package prompt

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
)

// Template is one reusable prompt. UserPromptTmpl is a Go text/template
// rendered against per-request variables.
type Template struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	SystemPrompt   string `json:"system_prompt"`
	UserPromptTmpl string `json:"user_prompt_template"`
	Version        string `json:"version"`
}

// Registry holds all registered prompts.
type Registry struct {
	prompts map[string]*Template
	mu      sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{
			prompts: make(map[string]*Template),
		}
	})
	return globalRegistry
}

// Register adds or replaces a prompt template.
func (r *Registry) Register(pt *Template) error {
	if pt.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompts[pt.ID] = pt
	return nil
}

// Lookup retrieves a prompt by ID.
func (r *Registry) Lookup(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.prompts[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("prompt not found: %s", id)
}

// Count returns the number of registered prompts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}

// Render expands the user prompt template with the given variables and
// returns the user prompt plus the template's system prompt.
func (r *Registry) Render(id string, vars map[string]interface{}) (userPrompt string, systemPrompt string, err error) {
	pt, err := r.Lookup(id)
	if err != nil {
		return "", "", err
	}

	tmpl, err := template.New(pt.ID).Parse(pt.UserPromptTmpl)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse prompt %s: %w", pt.ID, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", "", fmt.Errorf("failed to render prompt %s: %w", pt.ID, err)
	}
	return buf.String(), pt.SystemPrompt, nil
}
