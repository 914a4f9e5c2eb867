// Package dashboard is the interactive terminal view over the task store:
// browsing, filtering, text search, deadline notifications, and on-demand AI
// suggestions.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskflowd/internal/model"
	"github.com/sandeepkv93/taskflowd/internal/store"
)

// Suggester is the slice of the AI producer the dashboard needs.
type Suggester interface {
	GenerateTaskSuggestion(ctx context.Context, title, description string, entries []model.ContextEntry) model.Suggestion
}

const (
	refreshInterval   = time.Minute
	suggestionTimeout = 30 * time.Second
)

type StatusBar struct {
	Text    string
	IsError bool
}

type suggestionMsg struct {
	taskID     string
	suggestion model.Suggestion
}

type refreshMsg time.Time

type Model struct {
	store *store.Store
	ai    Suggester

	tasks    []model.Task
	selected int

	Filter store.Filter
	search textinput.Model

	searching         bool
	generating        bool
	showNotifications bool

	spin           spinner.Model
	lastSuggestion *model.Suggestion
	suggestedFor   string
	Status         StatusBar
}

func NewModel(st *store.Store, suggester Suggester) Model {
	search := textinput.New()
	search.Placeholder = "search title or description"
	search.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		store:             st,
		ai:                suggester,
		search:            search,
		spin:              spin,
		showNotifications: true,
		Status:            StatusBar{Text: "ready"},
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, scheduleRefresh())
}

func scheduleRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case suggestionMsg:
		m.generating = false
		m.lastSuggestion = &msg.suggestion
		m.suggestedFor = msg.taskID
		m.Status = StatusBar{Text: fmt.Sprintf("suggestion ready: priority %d, category %s", msg.suggestion.PriorityScore, msg.suggestion.SuggestedCategory)}
		return m, nil
	case refreshMsg:
		m.reload()
		return m, scheduleRefresh()
	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
			m.reload()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.reload()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}
		return m, nil
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "f":
		m.Filter.Status = nextStatus(m.Filter.Status)
		m.reload()
		return m, nil
	case "p":
		m.Filter.Priority = nextBand(m.Filter.Priority)
		m.reload()
		return m, nil
	case "n":
		m.showNotifications = !m.showNotifications
		return m, nil
	case "r":
		m.reload()
		m.Status = StatusBar{Text: "reloaded"}
		return m, nil
	case "g":
		return m.startSuggestion()
	case "a":
		return m.applySuggestion()
	}
	return m, nil
}

func (m Model) startSuggestion() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		m.Status = StatusBar{Text: "no task selected", IsError: true}
		return m, nil
	}
	if m.generating {
		return m, nil
	}
	m.generating = true
	m.Status = StatusBar{Text: "asking for suggestions..."}

	st, ai := m.store, m.ai
	cmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), suggestionTimeout)
		defer cancel()
		entries := st.RecentContextEntries(5)
		suggestion := ai.GenerateTaskSuggestion(ctx, task.Title, task.Description, entries)
		return suggestionMsg{taskID: task.ID, suggestion: suggestion}
	}
	return m, tea.Batch(m.spin.Tick, cmd)
}

func (m Model) applySuggestion() (tea.Model, tea.Cmd) {
	if m.lastSuggestion == nil {
		m.Status = StatusBar{Text: "no suggestion to apply", IsError: true}
		return m, nil
	}
	if _, err := m.store.UpdateTask(m.suggestedFor, m.lastSuggestion.Apply()); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("apply failed: %v", err), IsError: true}
		return m, nil
	}
	m.lastSuggestion = nil
	m.reload()
	m.Status = StatusBar{Text: "suggestion applied"}
	return m, nil
}

func (m *Model) reload() {
	filtered := m.store.FilterTasks(m.Filter)
	query := m.search.Value()
	tasks := make([]model.Task, 0, len(filtered))
	for _, task := range filtered {
		if store.MatchesText(task, query) {
			tasks = append(tasks, task)
		}
	}
	m.tasks = tasks
	if m.selected >= len(m.tasks) {
		m.selected = len(m.tasks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	if len(m.tasks) == 0 || m.selected >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.selected], true
}

func nextStatus(current model.Status) model.Status {
	switch current {
	case "":
		return model.StatusPending
	case model.StatusPending:
		return model.StatusInProgress
	case model.StatusInProgress:
		return model.StatusCompleted
	default:
		return ""
	}
}

func nextBand(current model.PriorityBand) model.PriorityBand {
	switch current {
	case "":
		return model.BandLow
	case model.BandLow:
		return model.BandMedium
	case model.BandMedium:
		return model.BandHigh
	default:
		return ""
	}
}
