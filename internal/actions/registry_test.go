package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/heron/internal/launch"
	"github.com/simonhull/heron/internal/prompt"
)

type namedAction struct {
	name string
}

func (a namedAction) Name() string { return a.name }
func (a namedAction) Description() string { return "test action" }
func (a namedAction) Run(*Env, Args) (*launch.Task, error) {
	return nil, nil
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(namedAction{name: "one"}))
	assert.Error(t, r.Register(namedAction{name: "one"}))
	assert.Error(t, r.Register(namedAction{name: ""}))
	assert.Error(t, r.Register(nil))

	_, ok := r.Get("one")
	assert.True(t, ok)
}

func TestBuiltinRegistry(t *testing.T) {
	r := NewBuiltinRegistry()

	assert.Equal(t, []string{
		"add-migration",
		"add-razor-page",
		"drop-database",
		"remove-migration",
		"update-database",
		"update-database-to",
	}, r.List())
}

func TestRegistry_RunUnknown(t *testing.T) {
	env, _, _ := newEnv()

	_, err := NewRegistry().Run(env, "missing", Args{})
	assert.ErrorContains(t, err, "not found")
}

func TestRegistry_Palette(t *testing.T) {
	env, l, _ := newEnv()
	p := &mockPrompter{}
	p.On("Ask", mock.MatchedBy(func(s prompt.Spec) bool {
		return s.Kind == prompt.List && len(s.Choices) == 6
	})).Return("Drops the database", nil).Once()
	env.Prompter = p

	_, err := NewBuiltinRegistry().Palette(env)
	require.NoError(t, err)

	p.AssertExpectations(t)
	calls := l.invocations()
	require.Len(t, calls, 1)
	assert.Equal(t, "dotnet ef database drop", calls[0].String())
}

func TestRegistry_PaletteWithoutPrompter(t *testing.T) {
	env, l, n := newEnv()

	_, err := NewBuiltinRegistry().Palette(env)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Len(t, n.Errors(), 1)
	assert.Empty(t, l.invocations())
}
