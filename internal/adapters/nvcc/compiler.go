// Package nvcc invokes the external CUDA compiler.
package nvcc

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler using os/exec.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new Compiler.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// BuildShared compiles src into a host shared library at out.
func (c *Compiler) BuildShared(ctx context.Context, tc domain.Toolchain, src, out string) error {
	args := []string{"--shared", "--compiler-bindir", tc.HostCompiler}
	if runtime.GOOS != "windows" {
		args = append(args, "-Xcompiler", "-fPIC")
	}
	args = append(args, "-o", out, src)
	return c.invoke(ctx, tc.Nvcc, out, args)
}

// BuildPTX compiles src into an architecture-targeted PTX module at out.
func (c *Compiler) BuildPTX(ctx context.Context, tc domain.Toolchain, arch, src, out string) error {
	args := []string{"-ptx", "-arch=" + arch, "--compiler-bindir", tc.HostCompiler, "-o", out, src}
	return c.invoke(ctx, tc.Nvcc, out, args)
}

// invoke removes any stale output and runs one compiler invocation, wiring
// its streams to the logger. A rebuild therefore never leaves a mixed
// old/new artifact set: either the fresh artifact exists or none does.
func (c *Compiler) invoke(ctx context.Context, nvcc, out string, args []string) error {
	if err := removeStale(out); err != nil {
		return err
	}

	c.logger.Info(strings.Join(append([]string{nvcc}, args...), " "))

	var stdout io.Writer = &logWriter{logger: c.logger, level: "info"}
	var stderr io.Writer = &logWriter{logger: c.logger, level: "error"}
	// Mirror the streams onto the current telemetry vertex so the rendered
	// run shows the compiler output alongside the step.
	if v := ports.VertexFromContext(ctx); v != nil {
		stdout = io.MultiWriter(stdout, v.Stdout())
		stderr = io.MultiWriter(stderr, v.Stdout())
	}

	cmd := exec.CommandContext(ctx, nvcc, args...) //nolint:gosec // compiler path resolved by the locator
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		// A failed invocation must not leave a partial output behind.
		_ = removeStale(out)
		return zerr.With(zerr.With(domain.ErrCompilerInvocationFailed, "output", out), "exit_code", exitCode)
	}
	return nil
}

func removeStale(out string) error {
	if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove stale artifact"), "path", out)
	}
	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
