package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskflowd/internal/model"
	"github.com/sandeepkv93/taskflowd/internal/store"
)

type stubSuggester struct {
	suggestion model.Suggestion
	calls      int
}

func (s *stubSuggester) GenerateTaskSuggestion(_ context.Context, _, _ string, _ []model.ContextEntry) model.Suggestion {
	s.calls++
	return s.suggestion
}

func newTestModel(t *testing.T) (Model, *store.Store, *stubSuggester) {
	t.Helper()
	start := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	st := store.NewWithClock(func() func() time.Time {
		current := start
		return func() time.Time {
			out := current
			current = current.Add(time.Second)
			return out
		}
	}())
	suggester := &stubSuggester{suggestion: model.Suggestion{
		PriorityScore:       5,
		PriorityLabel:       "High",
		EnhancedDescription: "enhanced",
		SuggestedCategory:   "Work",
		Reasoning:           "urgent per context",
	}}
	return NewModel(st, suggester), st, suggester
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelDefaults(t *testing.T) {
	m, _, _ := newTestModel(t)
	if !m.showNotifications {
		t.Fatal("expected notifications shown by default")
	}
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestKeyCyclesStatusFilter(t *testing.T) {
	m, st, _ := newTestModel(t)
	_, _ = st.CreateTask(store.TaskInput{Title: "a", Description: "d"})
	_, _ = st.CreateTask(store.TaskInput{Title: "b", Description: "d", Status: model.StatusCompleted})

	updated, _ := m.Update(key('f'))
	next := updated.(Model)
	if next.Filter.Status != model.StatusPending {
		t.Fatalf("expected pending filter, got %q", next.Filter.Status)
	}
	if len(next.tasks) != 1 || next.tasks[0].Title != "a" {
		t.Fatalf("expected only pending task, got %#v", next.tasks)
	}

	for i := 0; i < 3; i++ {
		updated, _ = next.Update(key('f'))
		next = updated.(Model)
	}
	if next.Filter.Status != "" {
		t.Fatalf("expected filter cycle back to unset, got %q", next.Filter.Status)
	}
}

func TestKeyCyclesPriorityBand(t *testing.T) {
	m, st, _ := newTestModel(t)
	_, _ = st.CreateTask(store.TaskInput{Title: "low", Description: "d", PriorityScore: 1})
	_, _ = st.CreateTask(store.TaskInput{Title: "high", Description: "d", PriorityScore: 5})

	updated, _ := m.Update(key('p'))
	next := updated.(Model)
	if next.Filter.Priority != model.BandLow {
		t.Fatalf("expected low band, got %q", next.Filter.Priority)
	}
	if len(next.tasks) != 1 || next.tasks[0].Title != "low" {
		t.Fatalf("expected only the low task, got %#v", next.tasks)
	}
}

func TestSearchComposesWithFilter(t *testing.T) {
	m, st, _ := newTestModel(t)
	_, _ = st.CreateTask(store.TaskInput{Title: "Write report", Description: "numbers", PriorityScore: 1})
	_, _ = st.CreateTask(store.TaskInput{Title: "Report bug", Description: "crash", PriorityScore: 5})
	_, _ = st.CreateTask(store.TaskInput{Title: "Walk dog", Description: "park", PriorityScore: 1})
	m.reload()

	updated, _ := m.Update(key('/'))
	next := updated.(Model)
	if !next.searching {
		t.Fatal("expected search mode")
	}
	for _, r := range "report" {
		updated, _ = next.Update(key(r))
		next = updated.(Model)
	}
	if len(next.tasks) != 2 {
		t.Fatalf("expected 2 matches for 'report', got %d", len(next.tasks))
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = updated.(Model)
	if next.searching {
		t.Fatal("expected search blurred on esc")
	}

	// Structural filter ANDs with the text query.
	updated, _ = next.Update(key('p'))
	next = updated.(Model)
	if len(next.tasks) != 1 || next.tasks[0].Title != "Write report" {
		t.Fatalf("expected low-band report task only, got %#v", next.tasks)
	}
}

func TestSuggestionFlow(t *testing.T) {
	m, st, suggester := newTestModel(t)
	task, _ := st.CreateTask(store.TaskInput{Title: "Finish proposal", Description: "Draft it"})
	m.reload()

	updated, cmd := m.Update(key('g'))
	next := updated.(Model)
	if !next.generating {
		t.Fatal("expected generating state")
	}
	if cmd == nil {
		t.Fatal("expected suggestion command")
	}

	// Drive the batched command until the suggestion message surfaces.
	msg := collectMsg(t, cmd)
	updated, _ = next.Update(msg)
	next = updated.(Model)
	if next.generating {
		t.Fatal("expected generation finished")
	}
	if next.lastSuggestion == nil || next.lastSuggestion.PriorityScore != 5 {
		t.Fatalf("expected stored suggestion, got %+v", next.lastSuggestion)
	}
	if suggester.calls != 1 {
		t.Fatalf("expected one producer call, got %d", suggester.calls)
	}

	updated, _ = next.Update(key('a'))
	next = updated.(Model)
	got, err := st.GetTask(task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.PriorityScore != 5 || got.Category != "Work" || got.Description != "enhanced" {
		t.Fatalf("expected suggestion applied, got %#v", got)
	}
	if got.Title != "Finish proposal" || got.Status != model.StatusPending {
		t.Fatalf("expected title and status untouched, got %#v", got)
	}
	if next.lastSuggestion != nil {
		t.Fatal("expected suggestion cleared after apply")
	}
}

// collectMsg runs a command tree until it yields a suggestionMsg.
func collectMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if _, ok := msg.(suggestionMsg); ok {
			return msg
		}
	}
	t.Fatal("no suggestion message produced")
	return nil
}

func TestApplyWithoutSuggestion(t *testing.T) {
	m, _, _ := newTestModel(t)
	updated, _ := m.Update(key('a'))
	next := updated.(Model)
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestViewListsTasksAndKeys(t *testing.T) {
	m, st, _ := newTestModel(t)
	_, _ = st.CreateTask(store.TaskInput{Title: "Visible task", Description: "d"})
	m.reload()

	out := m.View()
	if !strings.Contains(out, "Visible task") {
		t.Fatalf("expected task in view:\n%s", out)
	}
	if !strings.Contains(out, "[g]suggest") {
		t.Fatalf("expected key help in view:\n%s", out)
	}
}
