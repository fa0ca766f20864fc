package parsers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// ErrPluginNotFound is returned when no plugin matches a lookup.
var ErrPluginNotFound = errors.New("structure parser not found")

// Registry tracks structure parser plugins by language name and file
// extension.
type Registry struct {
	plugins    map[string]Plugin
	extensions map[string]Plugin
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewRegistry creates an empty plugin registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		plugins:    make(map[string]Plugin),
		extensions: make(map[string]Plugin),
		logger:     logger,
	}
}

// Register adds a plugin under its language name and extensions.
func (r *Registry) Register(plugin Plugin) error {
	if plugin == nil {
		return errors.New("cannot register nil plugin")
	}
	name := plugin.Name()
	if name == "" {
		return errors.New("plugin must have a non-empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin with name %q already registered", name)
	}
	r.plugins[name] = plugin

	for _, ext := range plugin.Extensions() {
		if ext == "" {
			continue
		}
		ext = strings.TrimPrefix(strings.ToLower(ext), ".")
		r.extensions[ext] = plugin
	}

	r.logger.Debug("Registered structure parser", "language", name, "extensions", plugin.Extensions())
	return nil
}

// ForLanguage retrieves a plugin by language name.
func (r *Registry) ForLanguage(language string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, language)
	}
	return plugin, nil
}

// ForExtension retrieves a plugin by file extension, with or without the
// leading dot.
func (r *Registry) ForExtension(ext string) (Plugin, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: empty extension", ErrPluginNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w for extension %s", ErrPluginNotFound, ext)
	}
	return plugin, nil
}

// All returns every registered plugin.
func (r *Registry) All() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugins := make([]Plugin, 0, len(r.plugins))
	for _, plugin := range r.plugins {
		plugins = append(plugins, plugin)
	}
	return plugins
}
