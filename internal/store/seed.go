package store

import (
	"time"

	"github.com/sandeepkv93/taskflowd/internal/model"
)

// Seed loads a small demo dataset for local runs: a handful of tasks with
// deadlines near now, two analyzed context entries, and the stock categories.
func (s *Store) Seed() {
	now := s.nowFunc()

	for _, c := range []struct{ name, color string }{
		{"Work", "#3B82F6"},
		{"Personal", "#10B981"},
		{"Health", "#F59E0B"},
		{"Learning", "#8B5CF6"},
		{"Finance", "#EF4444"},
	} {
		_, _ = s.CreateCategory(c.name, c.color)
	}

	in2days := now.Add(48 * time.Hour)
	in5days := now.Add(5 * 24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	_, _ = s.CreateTask(TaskInput{
		Title:         "Complete project proposal",
		Description:   "Finish the quarterly project proposal for the new product launch",
		Category:      "Work",
		PriorityScore: 4,
		Deadline:      &in2days,
		Status:        model.StatusInProgress,
	})
	_, _ = s.CreateTask(TaskInput{
		Title:         "Schedule dentist appointment",
		Description:   "Call the dentist office to schedule a routine cleaning appointment",
		Category:      "Health",
		PriorityScore: 2,
	})
	_, _ = s.CreateTask(TaskInput{
		Title:         "Review team presentations",
		Description:   "Go through all team member presentations for next week's client meeting",
		Category:      "Work",
		PriorityScore: 3,
		Deadline:      &in5days,
		Status:        model.StatusCompleted,
	})
	_, _ = s.CreateTask(TaskInput{
		Title:         "Pay electricity bill",
		Description:   "Bill was due yesterday, pay online before late fees apply",
		Category:      "Finance",
		PriorityScore: 5,
		Deadline:      &yesterday,
	})

	_, _ = s.CreateContextEntry(ContextInput{
		Content:           "Had a productive meeting with the design team about the new UI components. They mentioned some concerns about accessibility and performance.",
		SourceType:        model.SourceMeeting,
		ProcessedInsights: "Meeting focused on UI design with emphasis on accessibility and performance optimization. Key concerns raised by design team require attention.",
	})
	_, _ = s.CreateContextEntry(ContextInput{
		Content:           "Received email from client requesting expedited delivery of the mobile app features. They want to launch before the holiday season.",
		SourceType:        model.SourceEmail,
		ProcessedInsights: "Client urgency for mobile app delivery before holiday season. Timeline acceleration required for feature completion.",
	})
}
