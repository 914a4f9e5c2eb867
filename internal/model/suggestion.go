package model

import "time"

// Suggestion is the structured output of the AI suggestion producer. It is
// advisory: callers decide whether to apply it to a task.
type Suggestion struct {
	PriorityScore       int    `json:"priority_score"`
	PriorityLabel       string `json:"priority_label"`
	SuggestedDeadline   string `json:"suggested_deadline,omitempty"`
	EnhancedDescription string `json:"enhanced_description"`
	SuggestedCategory   string `json:"suggested_category"`
	Reasoning           string `json:"reasoning"`
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDeadline interprets the suggested deadline when it is a date string.
// Natural-language deadlines ("before Friday") do not parse and are skipped.
func (s Suggestion) ParseDeadline() (time.Time, bool) {
	raw := s.SuggestedDeadline
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Apply builds the partial update that merges the suggestion into a task:
// priority, category, and description are overwritten, deadline only when the
// suggested value parses as a date. Title, status, and identity are untouched.
func (s Suggestion) Apply() TaskUpdate {
	update := TaskUpdate{
		PriorityScore: &s.PriorityScore,
		Category:      &s.SuggestedCategory,
		Description:   &s.EnhancedDescription,
	}
	if deadline, ok := s.ParseDeadline(); ok {
		update.Deadline = &deadline
	}
	return update
}
