package store

import (
	"strings"

	"github.com/sandeepkv93/taskflowd/internal/model"
)

// Filter narrows the task list. All set criteria are ANDed; zero values are
// unconstrained. An empty filter is equivalent to ListTasks.
type Filter struct {
	Status   model.Status
	Category string
	Priority model.PriorityBand
}

func (f Filter) IsZero() bool {
	return f.Status == "" && f.Category == "" && f.Priority == ""
}

func (f Filter) matches(task model.Task) bool {
	if f.Status != "" && task.Status != f.Status {
		return false
	}
	if f.Category != "" && task.Category != f.Category {
		return false
	}
	if f.Priority != "" && !f.Priority.Contains(task.PriorityScore) {
		return false
	}
	return true
}

// FilterTasks returns the matching subset in ListTasks order.
func (s *Store) FilterTasks(f Filter) []model.Task {
	all := s.ListTasks()
	if f.IsZero() {
		return all
	}
	out := make([]model.Task, 0, len(all))
	for _, task := range all {
		if f.matches(task) {
			out = append(out, task)
		}
	}
	return out
}

// MatchesText reports whether the query is a case-insensitive substring of
// the task title or description. An empty query matches everything. Callers
// compose it with FilterTasks for text search.
func MatchesText(task model.Task, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), query) ||
		strings.Contains(strings.ToLower(task.Description), query)
}
