package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuprov/internal/adapters/fs"
	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

// fakeToolkit lays out a toolkit root with a runtime library and an nvcc
// executable, returning the root.
func fakeToolkit(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("fixture uses linux library naming")
	}

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib64"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "lib64", "libcudart.so.12.0.107"), []byte("elf"), 0o600))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "bin", "nvcc"), []byte("#!/bin/sh\n"), 0o700))
	return root
}

func clearOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CUDA_HOME", "CUDA_ROOT", "CUDA_PATH", "LD_LIBRARY_PATH"} {
		t.Setenv(key, "")
	}
}

func TestLocator_RuntimeLibraryFromExtraRoot(t *testing.T) {
	clearOverrides(t)
	root := fakeToolkit(t)

	l := fs.NewLocator(quietLogger(t))
	l.ExtraRoots = []string{root}

	path, err := l.LocateRuntimeLibrary()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "lib64", "libcudart.so.12.0.107"), path)
}

func TestLocator_RuntimeLibraryFromEnvOverride(t *testing.T) {
	clearOverrides(t)
	root := fakeToolkit(t)
	t.Setenv("CUDA_HOME", root)

	l := fs.NewLocator(quietLogger(t))

	path, err := l.LocateRuntimeLibrary()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "lib64", "libcudart.so.12.0.107"), path)
}

func TestLocator_RuntimeLibraryResolvesSymlinks(t *testing.T) {
	clearOverrides(t)
	root := fakeToolkit(t)
	concrete := filepath.Join(root, "lib64", "libcudart.so.12.0.107")
	link := filepath.Join(root, "lib64", "libcudart.so")
	require.NoError(t, os.Symlink(concrete, link))

	l := fs.NewLocator(quietLogger(t))
	l.ExtraRoots = []string{root}

	path, err := l.LocateRuntimeLibrary()
	require.NoError(t, err)
	assert.Equal(t, concrete, path, "the concrete file wins regardless of which name matched first")
}

func TestLocator_RuntimeLibraryNotFound(t *testing.T) {
	clearOverrides(t)

	l := fs.NewLocator(quietLogger(t))
	l.ExtraRoots = []string{t.TempDir()}

	_, err := l.LocateRuntimeLibrary()
	if err == nil {
		t.Skip("a system cuda installation shadows the fixture")
	}
	assert.ErrorIs(t, err, domain.ErrRuntimeNotFound)
}

func TestLocator_DriverLibraryAbsenceIsNotAnError(t *testing.T) {
	clearOverrides(t)

	l := fs.NewLocator(quietLogger(t))
	l.ExtraRoots = []string{t.TempDir()}

	path, err := l.LocateDriverLibrary()
	require.NoError(t, err)
	if path != "" {
		t.Skip("a system cuda driver shadows the fixture")
	}
	assert.Empty(t, path)
}

func TestLocator_Toolchain(t *testing.T) {
	clearOverrides(t)
	root := fakeToolkit(t)

	l := fs.NewLocator(quietLogger(t))
	l.ExtraRoots = []string{root}
	l.HostCompiler = "sh" // always on PATH in test environments

	tc, err := l.LocateToolchain()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "bin", "nvcc"), tc.Nvcc)
	assert.NotEmpty(t, tc.HostCompiler)
}

func TestLocator_ToolchainMissingHostCompiler(t *testing.T) {
	clearOverrides(t)
	root := fakeToolkit(t)

	l := fs.NewLocator(quietLogger(t))
	l.ExtraRoots = []string{root}
	l.HostCompiler = "definitely-not-a-compiler"

	_, err := l.LocateToolchain()
	assert.ErrorIs(t, err, domain.ErrCompilerNotFound)
}
