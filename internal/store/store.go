// Package store implements the in-memory entity store owning tasks, context
// entries, and categories. Each collection is guarded by its own lock so every
// operation is atomic with respect to concurrent callers. The store is
// volatile: nothing survives a process restart.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/taskflowd/internal/model"
)

const (
	DefaultCategory    = "General"
	defaultRecentLimit = 10
)

type Store struct {
	nowFunc func() time.Time
	idFunc  func() string

	tasksMu sync.RWMutex
	tasks   []model.Task

	entriesMu sync.RWMutex
	entries   []model.ContextEntry

	categoriesMu sync.RWMutex
	categories   []model.Category
}

func New() *Store {
	return &Store{
		nowFunc: func() time.Time { return time.Now().UTC() },
		idFunc:  uuid.NewString,
	}
}

// NewWithClock builds a store with an injected clock, used by tests to pin
// created_at ordering.
func NewWithClock(nowFunc func() time.Time) *Store {
	s := New()
	if nowFunc != nil {
		s.nowFunc = nowFunc
	}
	return s
}

// TaskInput carries the caller-supplied fields for task creation. Zero values
// fall back to defaults: status pending, priority 3, category "General".
type TaskInput struct {
	Title         string
	Description   string
	Category      string
	PriorityScore int
	Deadline      *time.Time
	Status        model.Status
}

func (s *Store) CreateTask(in TaskInput) (model.Task, error) {
	now := s.nowFunc()
	task := model.Task{
		ID:            s.idFunc(),
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		PriorityScore: in.PriorityScore,
		Deadline:      in.Deadline,
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if task.Category == "" {
		task.Category = DefaultCategory
	}
	if task.PriorityScore == 0 {
		task.PriorityScore = model.DefaultPriorityScore
	}
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, &ValidationError{Err: err}
	}

	s.tasksMu.Lock()
	s.tasks = append(s.tasks, task)
	s.tasksMu.Unlock()

	s.bumpCategoryUsage(task.Category)
	return task, nil
}

func (s *Store) GetTask(id string) (model.Task, error) {
	s.tasksMu.RLock()
	defer s.tasksMu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return model.Task{}, ErrNotFound
}

// UpdateTask merges the provided fields over the existing record and
// refreshes updated_at. Priority range is validated at creation only.
func (s *Store) UpdateTask(id string, update model.TaskUpdate) (model.Task, error) {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		task := &s.tasks[i]
		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Description != nil {
			task.Description = *update.Description
		}
		if update.Category != nil {
			task.Category = *update.Category
		}
		if update.PriorityScore != nil {
			task.PriorityScore = *update.PriorityScore
		}
		if update.Deadline != nil {
			task.Deadline = update.Deadline
		}
		if update.Status != nil {
			task.Status = *update.Status
		}
		task.UpdatedAt = s.nowFunc()
		return *task, nil
	}
	return model.Task{}, ErrNotFound
}

func (s *Store) DeleteTask(id string) bool {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ListTasks returns all tasks ordered by created_at descending. The slice is
// a copy; callers may not mutate store state through it.
func (s *Store) ListTasks() []model.Task {
	s.tasksMu.RLock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	s.tasksMu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ContextInput carries the caller-supplied fields for a context entry.
// ProcessedInsights is produced upstream and stored verbatim.
type ContextInput struct {
	Content           string
	SourceType        model.SourceType
	ProcessedInsights string
}

func (s *Store) CreateContextEntry(in ContextInput) (model.ContextEntry, error) {
	entry := model.ContextEntry{
		ID:                s.idFunc(),
		Content:           in.Content,
		SourceType:        in.SourceType,
		ProcessedInsights: in.ProcessedInsights,
		CreatedAt:         s.nowFunc(),
	}
	if err := entry.Validate(); err != nil {
		return model.ContextEntry{}, &ValidationError{Err: err}
	}

	s.entriesMu.Lock()
	s.entries = append(s.entries, entry)
	s.entriesMu.Unlock()
	return entry, nil
}

func (s *Store) DeleteContextEntry(id string) bool {
	s.entriesMu.Lock()
	defer s.entriesMu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RecentContextEntries returns the newest entries first, truncated to limit.
// A non-positive limit falls back to 10.
func (s *Store) RecentContextEntries(limit int) []model.ContextEntry {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	s.entriesMu.RLock()
	out := make([]model.ContextEntry, len(s.entries))
	copy(out, s.entries)
	s.entriesMu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CreateCategory always succeeds for a non-empty name. Duplicate names are
// permitted; each record tracks its own usage count.
func (s *Store) CreateCategory(name, color string) (model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return model.Category{}, &ValidationError{Err: errNameRequired}
	}
	if color == "" {
		color = model.DefaultCategoryColor
	}
	category := model.Category{
		ID:    s.idFunc(),
		Name:  name,
		Color: color,
	}

	s.categoriesMu.Lock()
	s.categories = append(s.categories, category)
	s.categoriesMu.Unlock()
	return category, nil
}

func (s *Store) ListCategories() []model.Category {
	s.categoriesMu.RLock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	s.categoriesMu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UsageCount > out[j].UsageCount
	})
	return out
}

func (s *Store) bumpCategoryUsage(name string) {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()
	for i := range s.categories {
		if s.categories[i].Name == name {
			s.categories[i].UsageCount++
			return
		}
	}
}
