package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/summarizer"
	"github.com/DevRico003/youtube-summarizer-sub000/pkg/executor"
)

// commandModel adapts a user-configured LLM CLI (e.g. "llm", "ollama run")
// to the pipeline's LanguageModel contract. The prompt goes in on stdin,
// the completion comes back on stdout; which model actually answers is
// entirely the command's business.
type commandModel struct {
	exec    executor.Executor
	command string
	args    []string
}

// NewCommandModel wraps an external command as a LanguageModel. command
// holds the binary name followed by its fixed arguments.
func NewCommandModel(exec executor.Executor, command []string) (summarizer.LanguageModel, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("model command is empty")
	}
	return &commandModel{
		exec:    exec,
		command: command[0],
		args:    command[1:],
	}, nil
}

func (m *commandModel) Complete(ctx context.Context, system, user string) (string, error) {
	prompt := user
	if system != "" {
		prompt = system + "\n\n" + user
	}

	out, err := m.exec.ExecuteWithStdin(ctx, prompt, m.command, m.args...)
	if err != nil {
		return "", fmt.Errorf("run model command: %w", err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("model command returned no output")
	}

	return out, nil
}
