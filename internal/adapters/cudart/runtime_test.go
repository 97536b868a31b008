package cudart_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cuprov/internal/adapters/cudart"
	"go.trai.ch/cuprov/internal/core/domain"
)

// Version can only succeed against a real runtime library, so the tests
// exercise the failure path: it holds for the dynamic loader backends (load
// failure) and the cgo-less stub alike.
func TestRuntime_VersionMissingLibrary(t *testing.T) {
	r := cudart.NewRuntime()

	_, err := r.Version(filepath.Join(t.TempDir(), "libcudart.so"))
	assert.ErrorIs(t, err, domain.ErrVersionQueryFailed)
}

func TestRuntime_VersionEmptyPath(t *testing.T) {
	r := cudart.NewRuntime()

	_, err := r.Version("")
	assert.ErrorIs(t, err, domain.ErrVersionQueryFailed)
}
