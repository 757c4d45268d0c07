package llm

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// ModelProvider names the provider a prompt variant is written for.
type ModelProvider string

// PromptKey names a task prompt.
type PromptKey string

const (
	DefaultProvider     ModelProvider = "default"
	ExtractParamsPrompt PromptKey     = "extract_params"
)

// ExtractParamsData is the template input of ExtractParamsPrompt.
type ExtractParamsData struct {
	Sentence string
}

// PromptManager holds the embedded prompt templates. Files are named
// <key>_<provider>.prompt; the "default" variant serves every provider that
// has no file of its own.
type PromptManager struct {
	templates map[PromptKey]map[ModelProvider]*template.Template
}

func NewPromptManager() (*PromptManager, error) {
	return newPromptManagerFromFS(promptFiles)
}

func newPromptManagerFromFS(fsys fs.FS) (*PromptManager, error) {
	names, err := fs.Glob(fsys, "prompts/*.prompt")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded prompts: %w", err)
	}

	pm := &PromptManager{templates: make(map[PromptKey]map[ModelProvider]*template.Template)}
	for _, name := range names {
		key, provider, err := splitPromptName(path.Base(name))
		if err != nil {
			return nil, err
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt %s: %w", name, err)
		}
		tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt %s: %w", name, err)
		}
		if pm.templates[key] == nil {
			pm.templates[key] = make(map[ModelProvider]*template.Template)
		}
		pm.templates[key][provider] = tmpl
	}

	for key, variants := range pm.templates {
		if _, ok := variants[DefaultProvider]; !ok {
			return nil, fmt.Errorf("prompt %q has no default variant", key)
		}
	}
	return pm, nil
}

// splitPromptName splits "extract_params_ollama.prompt" into its key and
// provider. The provider is the part after the last underscore.
func splitPromptName(fileName string) (PromptKey, ModelProvider, error) {
	base := strings.TrimSuffix(fileName, path.Ext(fileName))
	i := strings.LastIndex(base, "_")
	if i <= 0 || i == len(base)-1 {
		return "", "", fmt.Errorf("invalid prompt file name %s, want <key>_<provider>.prompt", fileName)
	}
	return PromptKey(base[:i]), ModelProvider(base[i+1:]), nil
}

// Render executes the prompt for key, preferring the provider's own variant.
func (pm *PromptManager) Render(key PromptKey, provider ModelProvider, data any) (string, error) {
	variants, ok := pm.templates[key]
	if !ok {
		return "", fmt.Errorf("no prompt registered for key %q", key)
	}
	tmpl, ok := variants[provider]
	if !ok {
		tmpl = variants[DefaultProvider]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %q: %w", key, err)
	}
	return buf.String(), nil
}
