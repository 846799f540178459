// Package toolchain provides the adapter that runs the external build tool.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"go.trai.ch/xtask/internal/core/domain"
	"go.trai.ch/xtask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invoker implements ports.Invoker using os/exec.
// It holds no per-invocation state, so one Invoker may serve concurrent calls.
type Invoker struct {
	toolchain domain.Toolchain
	logger    ports.Logger
}

// NewInvoker creates an Invoker bound to the given toolchain.
func NewInvoker(tc domain.Toolchain, logger ports.Logger) *Invoker {
	return &Invoker{
		toolchain: tc,
		logger:    logger,
	}
}

// NewFactory returns a ports.InvokerFactory producing Invokers that share logger.
func NewFactory(logger ports.Logger) ports.InvokerFactory {
	return func(tc domain.Toolchain) ports.Invoker {
		return NewInvoker(tc, logger)
	}
}

// Invoke runs `<tool> build --target <target> --profile <profile> [...]` and waits for it.
//
// Both output streams are drained to EOF before Invoke returns, so tools producing
// more output than a pipe buffer holds cannot stall. Stdin is the null device.
//
// Cancelling ctx kills the tool together with the processes it started; Invoke then
// returns the context error.
func (i *Invoker) Invoke(ctx context.Context, def domain.BuildDefinition) (*domain.BuildResult, error) {
	if def.IsZero() {
		return nil, domain.ErrInvalidDefinition
	}

	name := i.toolchain.Name
	if name == "" {
		return nil, domain.ErrEmptyTool
	}

	env := resolveEnvironment(os.Environ(), i.toolchain.Environment)

	executable, err := lookPath(name, env)
	if err != nil {
		return nil, toolNotFound(name, err)
	}

	var outBuf, errBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, executable, def.Args()...) //nolint:gosec // tool is user configured
	// Keep the name as invoked in argv[0].
	cmd.Args[0] = name
	cmd.Env = env
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	cmd.WaitDelay = waitDelay
	killProcessGroupOnCancel(cmd)

	i.logger.Info(fmt.Sprintf("running %s %s (build_id %s)", name, strings.Join(def.Args(), " "), def.Fingerprint()))

	start := time.Now()
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, toolNotFound(name, err)
		}
		return nil, errors.Join(domain.ErrSpawnFailed, zerr.With(zerr.Wrap(err, "failed to start "+name), "tool", name))
	}

	// Wait returns only after both output streams reached EOF or waitDelay expired.
	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil && interrupted(waitErr) {
		return nil, zerr.With(zerr.Wrap(ctxErr, name+" was interrupted"), "tool", name)
	}

	code, err := exitCode(waitErr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to wait for "+name), "tool", name)
	}

	i.logger.Info(fmt.Sprintf("%s finished in %s (build_id %s)", name, elapsed.Round(time.Millisecond), def.Fingerprint()))

	return &domain.BuildResult{
		ExitCode: code,
		Stdout:   outBuf.Bytes(),
		Stderr:   errBuf.Bytes(),
		Duration: elapsed,
	}, nil
}

// waitDelay bounds how long output is still read after the tool exited or was killed.
const waitDelay = 2 * time.Second

func toolNotFound(name string, cause error) error {
	return errors.Join(
		domain.ErrToolNotFound,
		zerr.With(zerr.Wrap(cause, fmt.Sprintf("cannot locate %q", name)), "tool", name),
	)
}

// interrupted reports whether waitErr shows the process was stopped before it exited
// on its own, either killed or cut off after waitDelay.
func interrupted(waitErr error) bool {
	if errors.Is(waitErr, exec.ErrWaitDelay) ||
		errors.Is(waitErr, context.Canceled) ||
		errors.Is(waitErr, context.DeadlineExceeded) {
		return true
	}
	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return false
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	return ok && ws.Signaled()
}

// exitCode extracts the exit status from the error returned by Wait.
// Termination by signal is reported as the negated signal number.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	// The tool exited cleanly but a process it left behind kept the output open.
	if errors.Is(err, exec.ErrWaitDelay) {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, err
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal()), nil
	}
	return exitErr.ExitCode(), nil
}
