package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ebalint/taskdeck/internal/model"
)

func OK(msg string) {
	fmt.Println(current.Success.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg))
}

// Panel prints lines inside a framed box using the current theme.
func Panel(lines []string) {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	fmt.Println(border.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders a Unicode bar with a done/total tail.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 28
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// PriorityBadge is the short colored marker shown next to each task.
func PriorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return current.PrioHigh.Render("!!")
	case model.PriorityLow:
		return current.PrioLow.Render(" ·")
	default:
		return current.PrioMedium.Render(" !")
	}
}

// TaskLine renders one task for the flat CLI list.
func TaskLine(index int, t model.Task) string {
	box := current.Muted.Render(current.BoxUnchecked)
	title := t.Title
	if len(title) > 80 {
		title = title[:77] + "..."
	}
	if t.Completed {
		box = current.Success.Render(current.BoxChecked)
		title = current.Done.Render(title)
	}
	idx := current.Muted.Render(fmt.Sprintf("%2d.", index))
	return fmt.Sprintf("%s %s %s %s", idx, box, PriorityBadge(t.Priority), title)
}
