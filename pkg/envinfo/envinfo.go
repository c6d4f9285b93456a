// Package envinfo captures the host/environment record that accompanies a
// benchmark run, and writes it as the Environment CSV format spec §6
// defines: a single header row then one data row.
//
// This is explicitly an "external collaborator" per spec §1 — the core
// engine in pkg/bench never imports this package — but it is still part of
// a complete benchmarking repo, the way the teacher's cmd/consumption
// prints a host summary line (util.SystemSummary) before it starts
// sampling.
package envinfo

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Record is one row of the Environment CSV (spec §6).
type Record struct {
	UUID         string
	Timestamp    time.Time
	RuntimeSHA1  string // historically "julia_sha1"; the running Go toolchain's version
	PackageSHA1  string // VCS revision of the benchmarked module; "" if unavailable
	OS           string
	CPUCores     int
	Arch         string
	Machine      string
	UseBLAS64    bool
	WordSize     int
}

// Header is the Environment CSV's column order, fixed by spec §6.
var Header = []string{
	"uuid", "timestamp", "julia_sha1", "package_sha1", "os",
	"cpu_cores", "arch", "machine", "use_blas64", "word_size",
}

// Capture builds a Record describing the current host and process. It
// never fails: fields it cannot determine (notably PackageSHA1 when build
// info is unavailable, e.g. under `go run`) are left zero-valued and
// rendered as the literal string "NULL" by WriteCSV, per spec §6.
func Capture() Record {
	r := Record{
		UUID:      uuid.NewString(),
		Timestamp: time.Now().UTC(),
		// julia_sha1 is repurposed to carry the running Go toolchain's
		// version, kept under the original column name for wire-format
		// compatibility with spec §6's schema.
		RuntimeSHA1: runtime.Version(),
		OS:          runtime.GOOS,
		CPUCores:    runtime.NumCPU(),
		Arch:        runtime.GOARCH,
		// This harness has no BLAS dependency; the column is carried for
		// format compatibility and is always false.
		UseBLAS64: false,
		WordSize:  32 << (^uint(0) >> 63),
	}

	if host, err := os.Hostname(); err == nil {
		r.Machine = host
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				r.PackageSHA1 = setting.Value
				break
			}
		}
	}

	return r
}

// nullable renders s as the literal "NULL" when empty, matching spec §6's
// wire format for an absent VCS revision.
func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return s
}

// WriteCSV writes the Environment CSV header then r's single data row to w.
// When appendMode is true, the header is still emitted on every call — this
// mirrors historical behavior documented as an open question in spec §9;
// see DESIGN.md for the rationale kept here.
func WriteCSV(w io.Writer, r Record, appendMode bool) error {
	_ = appendMode // header is emitted regardless; see DESIGN.md.
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("envinfo: write header: %w", err)
	}
	row := []string{
		r.UUID,
		r.Timestamp.Format(time.RFC3339),
		r.RuntimeSHA1,
		nullable(r.PackageSHA1),
		r.OS,
		fmt.Sprintf("%d", r.CPUCores),
		r.Arch,
		r.Machine,
		fmt.Sprintf("%t", r.UseBLAS64),
		fmt.Sprintf("%d", r.WordSize),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("envinfo: write row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
