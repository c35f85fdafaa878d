// Package hooks runs user-configured shell commands when the wizard
// submits a record.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/review"
	"github.com/mark3labs/onboardr/internal/step"
)

// ErrTimeout is returned when a hook runs past its timeout.
var ErrTimeout = errors.New("hook timed out")

// waitDelay bounds how long Execute waits for the output pipes after the
// shell is killed. Background children of the command may keep them open.
const waitDelay = 2 * time.Second

// Execute runs a hook command with stdin attached and returns its stdout.
// Template variables in the command ({{session}}, {{fields}}) are expanded
// before execution. A non-zero exit or timeout is an error: the caller
// decides whether the event it guards may proceed.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables, stdin []byte) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return stdout.String(), fmt.Errorf("%w after %ds", ErrTimeout, timeout)
	}

	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		logger.Warn("Hook command failed: %v", err)
		if msg != "" {
			return stdout.String(), fmt.Errorf("hook command failed: %w: %s", err, msg)
		}
		return stdout.String(), fmt.Errorf("hook command failed: %w", err)
	}

	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
	}
	logger.Debug("Hook executed successfully, output length: %d bytes", stdout.Len())
	return stdout.String(), nil
}

// expandVariables replaces {{variable}} placeholders in the command string.
func expandVariables(command string, vars Variables) string {
	replacements := map[string]string{
		"{{session}}": vars.Session,
		"{{fields}}":  vars.Fields,
	}

	result := command
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// SubmitSink is a review.Sink that pipes the encoded record into a hook
// command. A failing command fails the submission, so the review stays
// open and the user can retry.
type SubmitSink struct {
	Hook    *HookConfig
	WorkDir string
	Session string
	Format  review.Format
}

// Submit runs the hook with rec on stdin.
func (s SubmitSink) Submit(rec step.Record) error {
	if s.Hook == nil || s.Hook.Command == "" {
		return nil
	}
	format := s.Format
	if format == "" {
		format = review.FormatJSON
	}
	data, err := review.Encode(rec, format, false)
	if err != nil {
		return err
	}

	vars := Variables{Session: s.Session, Fields: strconv.Itoa(rec.Len())}
	out, err := Execute(context.Background(), s.Hook, s.WorkDir, vars, data)
	if err != nil {
		return fmt.Errorf("on_submit hook: %w", err)
	}
	if out != "" {
		logger.Info("on_submit hook output: %s", strings.TrimSpace(out))
	}
	return nil
}
