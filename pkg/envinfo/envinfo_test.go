package envinfo

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_FillsHostFields(t *testing.T) {
	r := Capture()
	_, err := uuid.Parse(r.UUID)
	require.NoError(t, err)
	assert.NotEmpty(t, r.RuntimeSHA1)
	assert.NotEmpty(t, r.OS)
	assert.NotEmpty(t, r.Arch)
	assert.Greater(t, r.CPUCores, 0)
	assert.Contains(t, []int{32, 64}, r.WordSize)
	assert.False(t, r.UseBLAS64)
}

func TestWriteCSV_HeaderThenOneRow(t *testing.T) {
	r := Capture()
	r.PackageSHA1 = ""

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r, false))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "NULL", rows[1][3], "empty package_sha1 must render as literal NULL")
}

func TestWriteCSV_AppendModeStillEmitsHeader(t *testing.T) {
	r := Capture()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r, true))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
}
