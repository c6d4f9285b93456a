package report

import "fmt"

// Bytes is a uint64 wrapper for human-readable byte-count formatting,
// adapted from the teacher's types.Bytes: same automatic-unit switch, now
// used to render Summary.BytesPerEval instead of a process's I/O deltas.
type Bytes uint64

// Humanized returns a human-readable string with automatic unit (B, KB,
// MB, GB, TB).
func (b Bytes) Humanized() string {
	const unit = 1024
	v := float64(b)
	switch {
	case b >= 1<<40:
		return fmt.Sprintf("%.2f TB", v/(1<<40))
	case b >= 1<<30:
		return fmt.Sprintf("%.2f GB", v/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.2f MB", v/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.2f KB", v/(1<<10))
	default:
		return fmt.Sprintf("%d B", uint64(b))
	}
}
