package actions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/simonhull/heron/internal/launch"
	"github.com/simonhull/heron/internal/prompt"
)

// Registry holds the actions offered by the palette
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Action),
	}
}

// NewBuiltinRegistry creates a registry holding every builtin action
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, a := range Builtin() {
		// Builtin names are unique and non-empty.
		_ = r.Register(a)
	}
	return r
}

// Register adds an action to the registry
func (r *Registry) Register(a Action) error {
	if a == nil {
		return fmt.Errorf("cannot register nil action")
	}

	name := a.Name()
	if name == "" {
		return fmt.Errorf("cannot register action with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("action '%s' is already registered", name)
	}

	r.actions[name] = a
	return nil
}

// Get retrieves an action by name
func (r *Registry) Get(name string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	return a, ok
}

// List returns all registered action names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Run executes an action by name
func (r *Registry) Run(env *Env, name string, args Args) (*launch.Task, error) {
	a, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("action '%s' not found in registry", name)
	}
	return a.Run(env, args)
}

// Palette asks the user to pick an action by its description and runs it
// with no pre-supplied arguments.
func (r *Registry) Palette(env *Env) (*launch.Task, error) {
	names := r.List()
	if len(names) == 0 {
		return nil, fmt.Errorf("no actions registered")
	}

	byCaption := make(map[string]string, len(names))
	captions := make([]string, 0, len(names))
	for _, name := range names {
		a, _ := r.Get(name)
		caption := a.Description()
		byCaption[caption] = name
		captions = append(captions, caption)
	}

	if env.Prompter == nil {
		env.Notifier.Error("no prompt available to choose a command")
		return nil, env.aborted("no prompter")
	}

	caption, err := env.input(Args{}, "", prompt.ListSpec("Command", captions))
	if err != nil {
		return nil, err
	}

	return r.Run(env, byCaption[caption], Args{})
}
