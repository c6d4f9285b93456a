package samplecsv

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/ja7ad/benchkit/pkg/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_EmptyStore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bench.NewSampleStore(0), false))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
	assert.Equal(t, Header, rows[0])
}

func TestWrite_OneRow(t *testing.T) {
	s := bench.NewSampleStore(1)
	require.NoError(t, s.Append(2, 100, 5, 16, 1))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, false))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"2", "100", "5", "16", "1"}, rows[1])
}

func TestWrite_PreservesInsertionOrder(t *testing.T) {
	s := bench.NewSampleStore(0)
	require.NoError(t, s.Append(1, 10, 0, 0, 0))
	require.NoError(t, s.Append(2, 20, 1, 4, 1))
	require.NoError(t, s.Append(3, 30, 2, 8, 2))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, false))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "3", rows[3][0])
}
