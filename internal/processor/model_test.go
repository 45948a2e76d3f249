package processor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	output string
	err    error

	stdin string
	name  string
	args  []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteWithStdin(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteWithStdin(ctx context.Context, stdin string, name string, args ...string) (string, error) {
	f.stdin = stdin
	f.name = name
	f.args = args
	return f.output, f.err
}

func TestCommandModelComplete(t *testing.T) {
	exec := &fakeExecutor{output: "model answer\n"}

	model, err := NewCommandModel(exec, []string{"ollama", "run", "llama3"})
	require.NoError(t, err)

	out, err := model.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)

	assert.Equal(t, "model answer", out)
	assert.Equal(t, "ollama", exec.name)
	assert.Equal(t, []string{"run", "llama3"}, exec.args)
	assert.Equal(t, "system prompt\n\nuser prompt", exec.stdin)
}

func TestCommandModelEmptyCommand(t *testing.T) {
	_, err := NewCommandModel(&fakeExecutor{}, nil)
	assert.Error(t, err)
}

func TestCommandModelCommandFailure(t *testing.T) {
	exec := &fakeExecutor{err: fmt.Errorf("exit status 1")}

	model, err := NewCommandModel(exec, []string{"llm"})
	require.NoError(t, err)

	_, err = model.Complete(context.Background(), "", "prompt")
	assert.Error(t, err)
}

func TestCommandModelEmptyOutput(t *testing.T) {
	exec := &fakeExecutor{output: "  \n"}

	model, err := NewCommandModel(exec, []string{"llm"})
	require.NoError(t, err)

	_, err = model.Complete(context.Background(), "", "prompt")
	assert.Error(t, err)
}
