package record_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuprov/internal/adapters/record"
	"go.trai.ch/cuprov/internal/core/domain"
)

func testConfig() *domain.ToolchainConfig {
	return &domain.ToolchainConfig{
		Libcudart:    "/usr/local/cuda/lib64/libcudart.so.11.0.194",
		Libcuda:      "/usr/lib/x86_64-linux-gnu/libcuda.so.470.57.02",
		NvidiaSMI:    "/usr/bin/nvidia-smi",
		Version:      domain.Version{Major: 11, Minor: 0},
		Capability:   domain.Capability{Major: 6, Minor: 1},
		Nvcc:         "/usr/local/cuda/bin/nvcc",
		HostCompiler: "/usr/bin/gcc",
		SourceHash:   "f0e1d2c3b4a59687",
	}
}

func newStore(t *testing.T) *record.Store {
	t.Helper()
	return record.NewStore(filepath.Join(t.TempDir(), record.DefaultFilename))
}

func TestStore_LoadMissingRecord(t *testing.T) {
	s := newStore(t)
	bindings, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, bindings)
}

func TestStore_CommitThenLoadRoundTrips(t *testing.T) {
	s := newStore(t)
	cfg := testConfig()

	require.NoError(t, s.Commit(cfg))

	bindings, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Bindings(), bindings)
}

func TestStore_CommitWritesCanonicalFormat(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Commit(testConfig()))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Generated by cuprov.")
	assert.Contains(t, content, `capability = "sm_61"`)
	assert.Contains(t, content, `version = "11.0"`)
}

func TestStore_LoadMalformedRecord(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("no equals sign here\n"), 0o600))

	_, err := s.Load()
	assert.ErrorIs(t, err, domain.ErrRecordMalformed)
}

func TestStore_LoadUnquotedValue(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("libcudart = bare-value\n"), 0o600))

	_, err := s.Load()
	assert.ErrorIs(t, err, domain.ErrRecordMalformed)
}

func TestStore_LoadSkipsCommentsAndBlankLines(t *testing.T) {
	s := newStore(t)
	content := "# a comment\n\nlibcudart = \"/usr/lib/libcudart.so\"\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o600))

	bindings, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"libcudart": "/usr/lib/libcudart.so"}, bindings)
}

func TestStore_StashAndRestore(t *testing.T) {
	s := newStore(t)
	cfg := testConfig()
	require.NoError(t, s.Commit(cfg))

	require.NoError(t, s.Stash())
	bindings, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, bindings, "record should be gone while stashed")

	require.NoError(t, s.Restore())
	bindings, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Bindings(), bindings)
}

func TestStore_StashWithoutRecordIsNoop(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Stash())
	assert.NoError(t, s.Restore())
}

func TestStore_CommitDropsBackup(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Commit(testConfig()))
	require.NoError(t, s.Stash())

	fresh := testConfig()
	fresh.SourceHash = "0000000000000001"
	require.NoError(t, s.Commit(fresh))

	_, err := os.Stat(s.Path() + ".bak")
	assert.True(t, os.IsNotExist(err), "backup should be removed after commit")
}

func TestStore_DiscardRemovesRecordAndBackup(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Commit(testConfig()))
	require.NoError(t, s.Stash())
	require.NoError(t, s.Commit(testConfig()))
	require.NoError(t, s.Stash())

	require.NoError(t, s.Discard())

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(s.Path() + ".bak")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_DiscardWithNothingToRemove(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Discard())
}
