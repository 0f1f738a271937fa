package shell_test

import (
	"testing"

	"github.com/jedevc/dwsh/internal/shell"
	"github.com/stretchr/testify/assert"
)

func TestHooks_ExtendDoesNotMutateBase(t *testing.T) {
	var calls []string

	base := shell.Hooks{}
	extended := base.Extend(func(command string, args []string) {
		calls = append(calls, "execute:"+command)
	}, func() {
		calls = append(calls, "fork")
	})

	base.RunExecute("base-should-not-fire", nil)
	base.RunFork()
	assert.Empty(t, calls, "base Hooks must be unaffected by Extend")

	extended.RunExecute("cmd", []string{"cmd"})
	extended.RunFork()
	assert.Equal(t, []string{"execute:cmd", "fork"}, calls)
}

func TestHooks_ExtendStacksOnTopOfExisting(t *testing.T) {
	var calls []string

	first := shell.Hooks{}.Extend(func(string, []string) {
		calls = append(calls, "first")
	}, nil)
	second := first.Extend(func(string, []string) {
		calls = append(calls, "second")
	}, nil)

	second.RunExecute("cmd", nil)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestHooks_NilCallbacksAreSkipped(t *testing.T) {
	h := shell.Hooks{}.Extend(nil, nil)
	assert.NotPanics(t, func() {
		h.RunExecute("cmd", nil)
		h.RunFork()
	})
}
