// Package report renders a bench.Summary to an io.Writer: Component 7 of
// the system overview, the pretty-printer boundary. It never mutates a
// Results or Summary and performs no I/O beyond writing to the given
// writer.
package report

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ja7ad/benchkit/pkg/bench"
)

// Print renders name's Results/Summary to w. When w is a terminal (and
// NO_COLOR is unset) it uses a lipgloss-styled layout; otherwise it falls
// back to the tabwriter-based plain table, the same split the teacher's
// CLI makes between its --pretty table and its CSV-like stdout mode.
func Print(w io.Writer, name string, r bench.Results, s bench.Summary) error {
	if shouldStyle(w) {
		return printStyled(w, name, r, s)
	}
	return printPlain(w, name, r, s)
}

// shouldStyle reports whether w looks like an interactive terminal and the
// user hasn't opted out via NO_COLOR, grounded on the teacher's own
// practice of branching CLI output on a --pretty flag.
func shouldStyle(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func boundString(b bench.Bound, format func(float64) string) string {
	if !b.Present {
		return "-"
	}
	return format(b.Value)
}

func flagBadges(r bench.Results) []string {
	var badges []string
	if r.Precompiled {
		badges = append(badges, "precompiled")
	}
	if r.MultipleSamples {
		badges = append(badges, "multi-sample")
	}
	if r.SearchPerformed {
		badges = append(badges, "search")
	}
	return badges
}

// printPlain matches the teacher's newTable/printTableHeader/printTableRow
// trio in cmd/consumption/main.go: a tabwriter with two-space padding.
func printPlain(w io.Writer, name string, r bench.Results, s bench.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTIME/EVAL\tLOWER\tUPPER\tGC%\tBYTES/EVAL\tALLOCS/EVAL\tR²\tFLAGS")
	fmt.Fprintln(tw, "----\t---------\t-----\t-----\t---\t----------\t-----------\t--\t-----")
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%s\t%d\t%s\t%s\n",
		name,
		Duration(s.Center),
		boundString(s.Lower, Duration),
		boundString(s.Upper, Duration),
		s.GCCenter,
		Bytes(s.BytesPerEval).Humanized(),
		s.AllocsPerEval,
		boundString(s.RSquared, func(v float64) string { return fmt.Sprintf("%.4f", v) }),
		fmt.Sprintf("%v", flagBadges(r)),
	)
	return tw.Flush()
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	badgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1).
			MarginRight(1)
)

// printStyled is the lipgloss variant: the center value in bold, the
// confidence interval dimmed, one colored badge per set Results flag —
// the same "badge" idea the teacher's HTML template uses for PIDs,
// repurposed here for Precompiled/MultipleSamples/SearchPerformed.
func printStyled(w io.Writer, name string, r bench.Results, s bench.Summary) error {
	var badges string
	for _, b := range flagBadges(r) {
		badges += badgeStyle.Render(b)
	}

	interval := "no interval"
	if s.Lower.Present && s.Upper.Present {
		interval = fmt.Sprintf("[%s, %s]", Duration(s.Lower.Value), Duration(s.Upper.Value))
	}

	lines := []string{
		titleStyle.Render(name) + "  " + titleStyle.Render(Duration(s.Center)) + "/eval",
		dimStyle.Render(interval),
		fmt.Sprintf("GC: %.2f%%  mem: %s/eval  allocs: %d/eval",
			s.GCCenter, Bytes(s.BytesPerEval).Humanized(), s.AllocsPerEval),
	}
	if s.RSquared.Present {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("r² = %.4f", s.RSquared.Value)))
	}
	lines = append(lines, badges)

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
