package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleStore_AppendAndLen(t *testing.T) {
	s := NewSampleStore(0)
	require.Equal(t, 0, s.Len())

	require.NoError(t, s.Append(2, 100, 5, 16, 1))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, []float64{2}, s.Evaluations())
	assert.Equal(t, []float64{100}, s.ElapsedTime())
	assert.Equal(t, []float64{5}, s.GCTime())
	assert.Equal(t, []uint64{16}, s.BytesAllocated())
	assert.Equal(t, []uint64{1}, s.Allocations())

	require.NoError(t, s.Append(3, 200, 0, 32, 2))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, Row{Evaluations: 3, ElapsedTime: 200, GCTime: 0, BytesAllocated: 32, Allocations: 2}, s.Row(1))
}

func TestSampleStore_AppendRejectsInvalidRows(t *testing.T) {
	s := NewSampleStore(0)

	err := s.Append(0, 100, 0, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEvaluations)
	assert.Equal(t, 0, s.Len(), "a rejected append must not extend any column")

	err = s.Append(1, 100, 200, 0, 0)
	require.Error(t, err, "gc_time must not exceed elapsed_time")
	assert.ErrorIs(t, err, ErrInvalidSample)
	assert.Equal(t, 0, s.Len())
}

func TestSampleStore_Clear(t *testing.T) {
	s := NewSampleStore(0)
	require.NoError(t, s.Append(1, 10, 0, 0, 0))
	require.NoError(t, s.Append(1, 20, 0, 0, 0))
	require.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Evaluations())
	assert.Empty(t, s.ElapsedTime())

	require.NoError(t, s.Append(1, 30, 0, 0, 0))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 30.0, s.ElapsedTime()[0])
}

func TestSampleStore_ColumnsStayParallel(t *testing.T) {
	s := NewSampleStore(4)
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Append(float64(i+1), float64(i*100), float64(i), uint64(i*8), uint64(i)))
	}
	n := s.Len()
	assert.Len(t, s.Evaluations(), n)
	assert.Len(t, s.ElapsedTime(), n)
	assert.Len(t, s.GCTime(), n)
	assert.Len(t, s.BytesAllocated(), n)
	assert.Len(t, s.Allocations(), n)
}
