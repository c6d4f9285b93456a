// Package samplecsv serializes a bench.SampleStore as the Samples CSV
// format spec §6 defines: a header row, then one row per sample in
// insertion order.
package samplecsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ja7ad/benchkit/pkg/bench"
)

// Header is the Samples CSV's column order, fixed by spec §6.
var Header = []string{"evaluations", "elapsed_time", "gc_time", "bytes_allocated", "allocations"}

// Write serializes s to w as Samples CSV. appendMode is accepted for
// symmetry with pkg/envinfo.WriteCSV and for the same historical reason:
// the header is emitted on every call regardless of append mode (see
// DESIGN.md's open-question decision).
func Write(w io.Writer, s *bench.SampleStore, appendMode bool) error {
	_ = appendMode

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("samplecsv: write header: %w", err)
	}

	evals := s.Evaluations()
	elapsed := s.ElapsedTime()
	gc := s.GCTime()
	bytesAlloc := s.BytesAllocated()
	allocs := s.Allocations()

	for i := 0; i < s.Len(); i++ {
		row := []string{
			formatFloat(evals[i]),
			formatFloat(elapsed[i]),
			formatFloat(gc[i]),
			fmt.Sprintf("%d", bytesAlloc[i]),
			fmt.Sprintf("%d", allocs[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("samplecsv: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
