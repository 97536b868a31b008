package ports

import (
	"context"

	"go.trai.ch/cuprov/internal/core/domain"
)

// Compiler invokes the external CUDA compiler to produce native artifacts.
//
// Implementations remove any stale output of the same name before each
// invocation so a failed build never leaves a mixed old/new artifact set.
// A non-zero compiler exit is domain.ErrCompilerInvocationFailed.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// BuildShared compiles src into a host shared library at out.
	BuildShared(ctx context.Context, tc domain.Toolchain, src, out string) error

	// BuildPTX compiles src into an architecture-targeted PTX module at out.
	BuildPTX(ctx context.Context, tc domain.Toolchain, arch, src, out string) error
}
