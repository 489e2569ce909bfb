package ufe

// Wrapper around the external save<->JSON converter (UFE.exe).  The tool is
// invoked once per export or patch; "-e" writes <save>.json next to the save,
// "-p" writes the JSON back into the save, and "-pv" additionally asks the
// tool to validate the result.  Validation failures are only reported in the
// tool's output text, so we grep for them.

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const Default_timeout = 60 * time.Second

// ToolTimeoutError means the converter ran past its deadline and was killed.
type ToolTimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *ToolTimeoutError) Error() string {
	return fmt.Sprintf("converter %s timed out after %s", e.Path, e.Timeout)
}

// ToolFailureError carries the converter's combined output for diagnosis.
type ToolFailureError struct {
	Path   string
	Args   []string
	Output string
	Err    error
}

func (e *ToolFailureError) Error() string {
	return fmt.Sprintf("converter %s %s failed: %v", e.Path, strings.Join(e.Args, " "), e.Err)
}

func (e *ToolFailureError) Unwrap() error { return e.Err }

// Tool runs the converter binary.
type Tool struct {
	Path    string
	Timeout time.Duration
}

func New_tool(path string) *Tool {
	return &Tool{Path: path, Timeout: Default_timeout}
}

func (t *Tool) run(ctx context.Context, args ...string) error {
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = Default_timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.Path, args...)
	out, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ToolTimeoutError{Path: t.Path, Timeout: timeout}
	}
	if err != nil {
		return &ToolFailureError{Path: t.Path, Args: args, Output: string(out), Err: err}
	}
	// The tool exits 0 even when validation fails; the only signal is text.
	if strings.Contains(string(out), "validation status 'failed'") {
		return &ToolFailureError{
			Path: t.Path, Args: args, Output: string(out),
			Err: errors.New("patched save failed validation"),
		}
	}
	return nil
}

// Export asks the converter to dump save_path as JSON.  The tool writes
// save_path+".json"; Export returns that path.
func (t *Tool) Export(ctx context.Context, save_path string) (string, error) {
	if err := t.run(ctx, "-e", save_path); err != nil {
		return "", err
	}
	return save_path + ".json", nil
}

// Patch writes save_path+".json" back into save_path.  With validate set the
// converter re-reads the patched save and checks it.
func (t *Tool) Patch(ctx context.Context, save_path string, validate bool) error {
	flag := "-p"
	if validate {
		flag = "-pv"
	}
	return t.run(ctx, flag, save_path)
}
