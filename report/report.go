// Package report renders stage timings as aligned terminal output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/weiihann/aocharness/harness"
)

// displayWidth is the column results are padded to.
const displayWidth = 40

// minFiller is the shortest run of dots between a duration and a result.
const minFiller = 3

// Printer writes timings to w. It implements harness.Reporter.
type Printer struct {
	w     io.Writer
	muted lipgloss.Style
	bold  lipgloss.Style

	columns int
}

// NewPrinter creates a Printer. Styling is dropped when w is not a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:     w,
		muted: r.NewStyle().Foreground(lipgloss.Color("8")),
		bold:  r.NewStyle().Bold(true),
	}
}

// DayHeader prints the title line of a single-day run.
func (p *Printer) DayHeader(day int) {
	fmt.Fprintf(p.w, "Day %d\n", day)
}

// Stage prints one timing line. Stages without output end right after
// the duration; multi-line output is printed indented below the label.
func (p *Printer) Stage(t harness.Timing) {
	duration := "(" + FormatDuration(t.Duration) + ")"
	fmt.Fprintf(p.w, "  - %s %s", t.Label, p.muted.Render(duration))

	if !t.HasOutput {
		fmt.Fprintln(p.w)
		return
	}

	width := len("  - ") + utf8.RuneCountInString(t.Label) + 1 +
		utf8.RuneCountInString(duration)
	fmt.Fprintf(p.w, " %s", p.muted.Render(strings.Repeat(".", fillerWidth(width))))

	if !strings.Contains(t.Output, "\n") {
		fmt.Fprintf(p.w, " %s\n", p.bold.Render(t.Output))
		return
	}

	fmt.Fprintln(p.w)

	for _, line := range strings.Split(strings.Trim(t.Output, "\n"), "\n") {
		fmt.Fprintf(p.w, "    %s\n", p.bold.Render(line))
	}
}

// DayRow prints one aggregate table row, emitting the header first.
func (p *Printer) DayRow(r harness.DayResult) {
	if p.columns == 0 {
		p.columns = max(len(r.Parts), harness.PrimaryParts)

		header := []string{"Day", "Parser"}
		for i := 0; i < p.columns; i++ {
			header = append(header, fmt.Sprintf("Part %d", i+1))
		}

		fmt.Fprintln(p.w, "| "+strings.Join(header, " | ")+" |")
		fmt.Fprintln(p.w, strings.Repeat("|--------", len(header))+"|")
	}

	cells := []string{fmt.Sprintf("%02d", r.Day), FormatDuration(r.Parse.Duration)}
	for _, part := range r.Parts {
		cells = append(cells, FormatDuration(part.Duration))
	}
	for i := len(r.Parts); i < p.columns; i++ {
		cells = append(cells, "-")
	}

	fmt.Fprintln(p.w, "| "+strings.Join(cells, " | ")+" |")
}

// Totals prints the aggregate summary lines.
func (p *Printer) Totals(s harness.Summary) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "Total parser time:   %s\n", p.bold.Render(FormatDuration(s.ParseTotal)))
	fmt.Fprintf(p.w, "Total solution time: %s\n", p.bold.Render(FormatDuration(s.SolveTotal)))
	fmt.Fprintf(p.w, "Total time:          %s\n", p.bold.Render(FormatDuration(s.Total())))
}

// GenerateJSON writes v as indented JSON to w.
func GenerateJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// FormatDuration renders d with two fractional digits in the largest
// unit that keeps the integer part non-zero, e.g. "12.34ms".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.2fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%.2fns", float64(d))
	}
}

// fillerWidth returns how many dots pad a line of the given width up to
// displayWidth, never fewer than minFiller.
func fillerWidth(width int) int {
	return displayWidth - min(displayWidth-minFiller-2, width) - 2
}
