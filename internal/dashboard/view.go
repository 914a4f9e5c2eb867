package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/taskflowd/internal/deadline"
	"github.com/sandeepkv93/taskflowd/internal/views"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(views.RenderHeader("taskflowd") + "\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("search: " + m.search.View() + "\n")
	}
	b.WriteString(m.filterLine() + "\n")

	selectedID := ""
	if task, ok := m.selectedTask(); ok {
		selectedID = task.ID
	}
	b.WriteString(views.RenderPanel(views.RenderTaskList(m.tasks, selectedID)) + "\n")

	if task, ok := m.selectedTask(); ok {
		reasoning := ""
		if m.lastSuggestion != nil && m.suggestedFor == task.ID {
			reasoning = m.lastSuggestion.Reasoning
		}
		b.WriteString(views.RenderPanel(views.RenderTaskDetail(task, reasoning)) + "\n")
	}

	if m.showNotifications {
		notifications := deadline.Notifications(m.store.ListTasks(), time.Now().UTC())
		b.WriteString(views.RenderNotifications(notifications) + "\n")
	}

	status := m.Status.Text
	if m.generating {
		status = m.spin.View() + " " + status
	}
	b.WriteString(views.RenderStatus(status, m.Status.IsError) + "\n")
	b.WriteString("keys: [j/k]move [/]search [f]status [p]priority [g]suggest [a]apply [n]notifications [r]reload [q]quit")

	return b.String()
}

func (m Model) filterLine() string {
	parts := make([]string, 0, 3)
	if m.Filter.Status != "" {
		parts = append(parts, fmt.Sprintf("status:%s", m.Filter.Status))
	}
	if m.Filter.Priority != "" {
		parts = append(parts, fmt.Sprintf("priority:%s", m.Filter.Priority))
	}
	if m.Filter.Category != "" {
		parts = append(parts, fmt.Sprintf("category:%s", m.Filter.Category))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("tasks: %d (no filter)", len(m.tasks))
	}
	return fmt.Sprintf("tasks: %d (%s)", len(m.tasks), strings.Join(parts, " "))
}
