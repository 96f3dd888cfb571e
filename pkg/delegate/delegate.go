// Package delegate runs external tools with inherited stdio and reports
// their exit status.
package delegate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Options describes a tool invocation.
type Options struct {
	CmdDir string

	// Name is the binary, looked up in PATH.
	Name string
	// Args are the tool's own default arguments.
	Args []string
	// ExtraArgs are forwarded verbatim after Args.
	ExtraArgs []string
	// Env replaces the process environment when not nil.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ExitError reports a tool that ran but exited with a non-zero status.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// Cmd creates an *exec.Cmd for the tool invocation.
func Cmd(ctx context.Context, opts *Options) *exec.Cmd {
	args := make([]string, 0, len(opts.Args)+len(opts.ExtraArgs))
	args = append(args, opts.Args...)
	args = append(args, opts.ExtraArgs...)

	cmd := exec.CommandContext(ctx, opts.Name, args...)
	cmd.Dir = opts.CmdDir
	cmd.Env = opts.Env

	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	return cmd
}

// Run executes the tool and waits for it. A non-zero exit status is
// returned as *ExitError; failing to start the tool is returned as is.
func Run(ctx context.Context, opts *Options) error {
	if opts.Name == "" {
		return errors.New("missing tool name")
	}

	cmd := Cmd(ctx, opts)

	return run(cmd, opts.Name)
}

func run(cmd *exec.Cmd, name string) error {
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal
			code = 1
		}
		return &ExitError{Name: name, Code: code}
	}

	return fmt.Errorf("failed to run %s: %w", name, err)
}
