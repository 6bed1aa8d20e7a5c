package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the Lip Gloss styles and symbols used by both the CLI
// renderer and the TUI. All helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	PrioLow, PrioMedium, PrioHigh lipgloss.Style

	BoxUnchecked, BoxChecked string
	Border                   lipgloss.Border
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	base := Theme{
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		Border:       lipgloss.RoundedBorder(),
	}
	switch strings.ToLower(name) {
	case "neon":
		base.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		base.Muted = lipgloss.NewStyle().Faint(true)
		base.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		base.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		base.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		base.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		base.PrioLow = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		base.PrioMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		base.PrioHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
		base.BoxUnchecked, base.BoxChecked = "◻", "◼"
	case "mono":
		plain := lipgloss.NewStyle()
		base.Title = plain.Bold(true)
		base.Muted, base.Accent, base.Success, base.Error, base.Pending = plain, plain, plain, plain, plain
		base.PrioLow, base.PrioMedium, base.PrioHigh = plain, plain, plain
		base.Selected = plain.Reverse(true)
		base.Done = plain.Strikethrough(true)
		base.BoxUnchecked, base.BoxChecked = "[ ]", "[x]"
		base.Border = lipgloss.NormalBorder()
	default: // classic
		base.Title = lipgloss.NewStyle().Bold(true)
		base.Muted = lipgloss.NewStyle().Faint(true)
		base.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		base.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		base.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		base.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		base.PrioLow = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		base.PrioMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		base.PrioHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}
	current = base
}

// Current exposes what renderers need.
func Current() Theme { return current }
