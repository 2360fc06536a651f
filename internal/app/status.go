package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ReportKind selects which status line is shown.
type ReportKind int

const (
	// ReportStarting: no exercise is done yet.
	ReportStarting ReportKind = iota
	// ReportNoData: exercises are done but no streak has been recorded.
	ReportNoData
	// ReportActive: progress was recorded today.
	ReportActive
	// ReportDueToday: the streak continues if something is solved today.
	ReportDueToday
	// ReportLapsed: a day was skipped.
	ReportLapsed
)

func (k ReportKind) String() string {
	switch k {
	case ReportStarting:
		return "starting"
	case ReportNoData:
		return "no_data"
	case ReportActive:
		return "active"
	case ReportDueToday:
		return "due_today"
	case ReportLapsed:
		return "lapsed"
	default:
		return "unknown"
	}
}

// Report is the outcome of a display computation.
type Report struct {
	Kind ReportKind

	// Streak is the streak the message refers to. Zero for ReportStarting
	// and ReportNoData.
	Streak uint32

	// Done is the number of exercises that look done.
	Done int
}

// Message returns the plain status line, symbol included.
func (r Report) Message() string {
	switch r.Kind {
	case ReportStarting:
		return "🚀 Let's get started! Your Rust journey begins now."
	case ReportNoData:
		return "📅 No streak data found. Start solving exercises to begin your streak!"
	case ReportActive:
		return fmt.Sprintf("✅ Current streak: %d 🔥", r.Streak)
	case ReportDueToday:
		return fmt.Sprintf("🔥 You're on a %d-day streak! Don’t forget to complete an exercise today!", r.Streak)
	default:
		return fmt.Sprintf("😴 Your streak was %d days. Time to start again!", r.Streak)
	}
}

// StatusPrinter writes one styled status line per report.
// Colors are only emitted when the writer is a color-capable terminal.
type StatusPrinter struct {
	w      io.Writer
	styles map[ReportKind]lipgloss.Style
}

// NewStatusPrinter creates a printer writing to w.
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	r := lipgloss.NewRenderer(w)
	return &StatusPrinter{
		w: w,
		styles: map[ReportKind]lipgloss.Style{
			ReportStarting: r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
			ReportNoData:   r.NewStyle().Foreground(lipgloss.Color("241")),
			ReportActive:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
			ReportDueToday: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			ReportLapsed:   r.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}

// Print writes the report's status line followed by a newline.
func (p *StatusPrinter) Print(r Report) error {
	_, err := fmt.Fprintln(p.w, p.styles[r.Kind].Render(r.Message()))
	return err
}
