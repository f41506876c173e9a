package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

// leap years beyond this count are elided in the middle
const maxListedLeapYears = 12

// Renderer formats results for a terminal. Colours are dropped automatically when
// the writer is not a terminal.
type Renderer struct {
	showZero bool

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	mutedStyle lipgloss.Style
	boxStyle   lipgloss.Style
	errorStyle lipgloss.Style
}

// NewRenderer creates a renderer whose colour profile matches w
func NewRenderer(w io.Writer, showZero bool) *Renderer {
	r := lipgloss.NewRenderer(w)

	return &Renderer{
		showZero: showZero,
		titleStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		labelStyle: r.NewStyle().
			Width(14),
		valueStyle: r.NewStyle().
			Width(22).
			Align(lipgloss.Right).
			Bold(true),
		mutedStyle: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		boxStyle: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		errorStyle: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF5555")).
			Foreground(lipgloss.Color("#FF5555")).
			Padding(0, 2),
	}
}

// Render lays out the unit table followed by the summary lines
func (r *Renderer) Render(start, target string, res *entity.TimeSpanResult) string {
	title := r.titleStyle.Render(fmt.Sprintf("%s → %s", start, target))

	rows := make([]string, 0, entity.UnitCount)
	for _, e := range res.Entries() {
		if e.Amount == 0 && !r.showZero {
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			r.labelStyle.Render(string(e.Unit)),
			r.valueStyle.Render(strconv.FormatInt(e.Amount, 10)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, r.mutedStyle.Render("no time elapsed"))
	}

	summary := []string{
		r.summaryLine("ISO-8601", res.ISO8601()),
		r.summaryLine("Nanoseconds", res.TotalNanoseconds().String()),
		r.summaryLine(fmt.Sprintf("Leap years (%d)", res.LeapCount()), formatLeapYears(res.LeapYears())),
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		lipgloss.JoinVertical(lipgloss.Left, summary...),
	)
	return r.boxStyle.Render(body)
}

// RenderError formats an error message
func (r *Renderer) RenderError(err error) string {
	return r.errorStyle.Render("✗ " + err.Error())
}

func (r *Renderer) summaryLine(label, value string) string {
	return r.mutedStyle.Render(label+": ") + value
}

func formatLeapYears(years []int) string {
	if len(years) == 0 {
		return "none"
	}

	format := func(ys []int) []string {
		out := make([]string, len(ys))
		for i, y := range ys {
			out[i] = strconv.Itoa(y)
		}
		return out
	}

	if len(years) <= maxListedLeapYears {
		return strings.Join(format(years), ", ")
	}

	half := maxListedLeapYears / 2
	head := format(years[:half])
	tail := format(years[len(years)-half:])
	return strings.Join(head, ", ") + ", …, " + strings.Join(tail, ", ")
}
