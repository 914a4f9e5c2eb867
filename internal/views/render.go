// Package views renders tasks and deadline notifications for the terminal.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/taskflowd/internal/deadline"
	"github.com/sandeepkv93/taskflowd/internal/model"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	alertStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Glyph renders the urgency marker for a notification bucket.
func Glyph(kind deadline.GlyphKind) string {
	switch kind {
	case deadline.GlyphAlert:
		return alertStyle.Render("⚠")
	case deadline.GlyphCalendarWarn:
		return warnStyle.Render("●")
	default:
		return infoStyle.Render("○")
	}
}

func RenderNotifications(notifications []deadline.Notification) string {
	var b strings.Builder
	b.WriteString("notifications:\n")
	if len(notifications) == 0 {
		b.WriteString(dimStyle.Render("no upcoming deadlines"))
		return panelStyle.Render(strings.TrimSpace(b.String()))
	}
	for _, n := range notifications {
		fmt.Fprintf(&b, "%s %s %s\n", Glyph(n.Glyph), n.Task.Title, dimStyle.Render(n.Label))
	}
	return panelStyle.Render(strings.TrimSpace(b.String()))
}

func statusMarker(status model.Status) string {
	switch status {
	case model.StatusCompleted:
		return "[x]"
	case model.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func RenderTaskLine(task model.Task, selected bool) string {
	line := fmt.Sprintf("%s p%d %s", statusMarker(task.Status), task.PriorityScore, task.Title)
	if task.Deadline != nil {
		line += " " + dimStyle.Render(task.Deadline.Format("Jan 2 15:04"))
	}
	if selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func RenderTaskList(tasks []model.Task, selectedID string) string {
	if len(tasks) == 0 {
		return dimStyle.Render("no tasks match")
	}
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, RenderTaskLine(task, task.ID == selectedID))
	}
	return strings.Join(lines, "\n")
}

// RenderTaskDetail shows one task with its description (and, when present,
// AI reasoning) rendered as markdown.
func RenderTaskDetail(task model.Task, reasoning string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(task.Title) + "\n")
	fmt.Fprintf(&b, "%s · priority %d · %s\n", task.Status, task.PriorityScore, task.Category)
	if task.Deadline != nil {
		fmt.Fprintf(&b, "due %s\n", task.Deadline.Format("Jan 2, 2006 15:04"))
	}
	b.WriteString(RenderMarkdown(task.Description))
	if reasoning != "" {
		b.WriteString("\n" + dimStyle.Render("why: ") + RenderMarkdown(reasoning))
	}
	return strings.TrimSpace(b.String())
}

func RenderHeader(title string) string {
	return headerStyle.Render(title)
}

func RenderStatus(text string, isError bool) string {
	if isError {
		return errorStyle.Render(text)
	}
	return statusStyle.Render(text)
}

func RenderPanel(content string) string {
	return panelStyle.Render(content)
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
