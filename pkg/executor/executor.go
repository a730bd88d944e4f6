package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor runs external commands. Kept as an interface so pipelines that
// shell out (yt-dlp, ffmpeg) can be tested with a fake.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

type commandExecutor struct{}

func New() Executor {
	return &commandExecutor{}
}

func (e *commandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderrStr := strings.TrimSpace(stderr.String()); stderrStr != "" {
			return "", fmt.Errorf("command %q: %w: %s", name, err, stderrStr)
		}
		return "", fmt.Errorf("command %q: %w", name, err)
	}

	return stdout.String(), nil
}
