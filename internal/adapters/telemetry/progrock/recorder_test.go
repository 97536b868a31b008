package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telemetry "go.trai.ch/cuprov/internal/adapters/telemetry/progrock"
	"go.trai.ch/cuprov/internal/core/ports"
	"github.com/vito/progrock"
)

func TestRecorder_RecordAndComplete(t *testing.T) {
	rec := telemetry.NewRecorder(progrock.NewTape())

	ctx, v := rec.Record(context.Background(), "build artifacts")
	require.NotNil(t, v)
	assert.Same(t, v, ports.VertexFromContext(ctx))

	_, err := v.Stdout().Write([]byte("nvcc output\n"))
	require.NoError(t, err)

	v.Complete(nil)
	assert.NoError(t, rec.Close())
}

func TestRecorder_CloseRendersRun(t *testing.T) {
	var buf bytes.Buffer
	rec := telemetry.New(&buf)

	_, v := rec.Record(context.Background(), "build artifacts")
	_, err := v.Stdout().Write([]byte("ptxas info\n"))
	require.NoError(t, err)
	v.Complete(nil)

	_, cached := rec.Record(context.Background(), "persist toolchain record")
	cached.Cached()
	cached.Complete(nil)

	require.NoError(t, rec.Close())

	assert.NotZero(t, buf.Len(), "closing the recorder must render the run")
	assert.True(t, strings.Contains(buf.String(), "build artifacts"), "rendered run must name the recorded steps")
}

func TestRecorder_FailedVertex(t *testing.T) {
	rec := telemetry.NewRecorder(progrock.NewTape())

	_, v := rec.Record(context.Background(), "discover cuda runtime")
	v.Complete(errors.New("libcudart not found"))

	assert.NoError(t, rec.Close())
}
