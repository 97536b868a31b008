package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuprov/internal/adapters/driver"
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

// fakeDriverRoot lays out a toolkit root with an optional management library
// and an nvidia-smi stub running the given script body.
func fakeDriverRoot(t *testing.T, smiScript string, withLib bool) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("fixture uses linux library naming")
	}

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib64"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0o750))
	if withLib {
		require.NoError(t, os.WriteFile(
			filepath.Join(root, "lib64", "libcuda.so.525.60.11"), []byte("elf"), 0o600))
	}
	if smiScript != "" {
		require.NoError(t, os.WriteFile(
			filepath.Join(root, "bin", "nvidia-smi"), []byte("#!/bin/sh\n"+smiScript), 0o700))
	}
	return root
}

func isolate(t *testing.T, root string) *fs.Locator {
	t.Helper()
	for _, key := range []string{"CUDA_HOME", "CUDA_ROOT", "CUDA_PATH", "LD_LIBRARY_PATH"} {
		t.Setenv(key, "")
	}
	// Keep a real nvidia-smi on the host PATH out of the picture.
	t.Setenv("PATH", t.TempDir())

	l := fs.NewLocator(quietLogger(t))
	if root != "" {
		l.ExtraRoots = []string{root}
	}
	return l
}

func TestProbe_FindsLibraryAndDiagnostic(t *testing.T) {
	root := fakeDriverRoot(t, "exit 0\n", true)
	l := isolate(t, root)

	p := driver.NewProbe(l, quietLogger(t))
	info, err := p.Probe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "lib64", "libcuda.so.525.60.11"), info.Library)
	assert.Equal(t, filepath.Join(root, "bin", "nvidia-smi"), info.DiagnosticSMI)
}

func TestProbe_BrokenDiagnosticTreatedAsAbsent(t *testing.T) {
	root := fakeDriverRoot(t, "echo 'NVML initialization failed' >&2\nexit 9\n", true)
	l := isolate(t, root)

	p := driver.NewProbe(l, quietLogger(t))
	info, err := p.Probe(context.Background())
	require.NoError(t, err, "library alone suffices")

	assert.NotEmpty(t, info.Library)
	assert.Empty(t, info.DiagnosticSMI)
}

func TestProbe_DiagnosticAloneSuffices(t *testing.T) {
	root := fakeDriverRoot(t, "exit 0\n", false)
	l := isolate(t, root)

	p := driver.NewProbe(l, quietLogger(t))
	info, err := p.Probe(context.Background())
	require.NoError(t, err)

	assert.Empty(t, info.Library)
	assert.NotEmpty(t, info.DiagnosticSMI)
}

func TestProbe_BothAbsentIsFatal(t *testing.T) {
	root := fakeDriverRoot(t, "", false)
	l := isolate(t, root)
	if !l.DriverMandatory() {
		t.Skip("driver is optional on this platform")
	}

	p := driver.NewProbe(l, quietLogger(t))
	_, err := p.Probe(context.Background())
	assert.ErrorIs(t, err, domain.ErrDriverNotFound)
}

func TestDevices_ParsesCapabilities(t *testing.T) {
	root := fakeDriverRoot(t, "echo '8.6'\necho '7.5'\n", false)
	l := isolate(t, root)

	d := driver.NewDevices(l, quietLogger(t))
	local, err := d.Capabilities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Capability{
		{Major: 8, Minor: 6},
		{Major: 7, Minor: 5},
	}, local)
}

func TestDevices_SkipsUnparseableLines(t *testing.T) {
	root := fakeDriverRoot(t, "echo '8.6'\necho 'N/A'\n", false)
	l := isolate(t, root)

	d := driver.NewDevices(l, quietLogger(t))
	local, err := d.Capabilities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Capability{{Major: 8, Minor: 6}}, local)
}

func TestDevices_MissingDiagnosticYieldsNoDevices(t *testing.T) {
	l := isolate(t, "")

	d := driver.NewDevices(l, quietLogger(t))
	local, err := d.Capabilities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, local)
}

func TestDevices_FailingQueryYieldsNoDevices(t *testing.T) {
	root := fakeDriverRoot(t, "exit 3\n", false)
	l := isolate(t, root)

	d := driver.NewDevices(l, quietLogger(t))
	local, err := d.Capabilities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, local)
}
