package report

import "fmt"

// Duration renders a nanosecond count with an auto-scaled unit (ns, µs,
// ms, s), mirroring Bytes.Humanized's switch-on-magnitude structure so the
// two read consistently in a table.
func Duration(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.3f s", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.3f ms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.3f µs", ns/1e3)
	default:
		return fmt.Sprintf("%.1f ns", ns)
	}
}
