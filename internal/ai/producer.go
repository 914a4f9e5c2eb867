package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskflowd/internal/model"
)

const (
	// FallbackReasoning is the fixed explanation carried by the fallback
	// suggestion whenever the completion service fails, times out, or replies garbage.
	FallbackReasoning = "AI suggestion temporarily unavailable, using defaults"

	// FallbackInsights replaces context analysis output on completion failure.
	FallbackInsights = "Context analysis temporarily unavailable"

	// Only the most recent context entries are relevant to a suggestion.
	maxContextEntries = 5

	suggestionSystemPrompt = "You are an AI assistant that helps with intelligent task management. Always respond with valid JSON."
	analysisSystemPrompt   = "You are an AI assistant that analyzes context for better task management."
)

// Producer builds completion requests from task input and recent context,
// validates the structured replies, and supplies deterministic fallbacks.
// It never returns an error and never mutates the store.
type Producer struct {
	llm Completer
}

func NewProducer(llm Completer) *Producer {
	return &Producer{llm: llm}
}

// GenerateTaskSuggestion asks the model for task metadata suggestions. Any
// failure along the way (transport, timeout, malformed reply, out-of-range
// fields) yields the fallback suggestion; this operation cannot fail.
func (p *Producer) GenerateTaskSuggestion(ctx context.Context, title, description string, entries []model.ContextEntry) model.Suggestion {
	reply, err := p.llm.Complete(ctx, Request{
		System:      suggestionSystemPrompt,
		User:        suggestionPrompt(title, description, entries),
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return fallbackSuggestion(description)
	}

	suggestion, err := parseSuggestion(reply)
	if err != nil {
		return fallbackSuggestion(description)
	}
	return suggestion
}

// AnalyzeContext summarizes a single context entry's themes, urgency, and
// deadlines in a few sentences. Failures produce a fixed placeholder.
func (p *Producer) AnalyzeContext(ctx context.Context, content string) string {
	reply, err := p.llm.Complete(ctx, Request{
		System:      analysisSystemPrompt,
		User:        analysisPrompt(content),
		Temperature: 0.5,
		MaxTokens:   200,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		return FallbackInsights
	}
	return strings.TrimSpace(reply)
}

func suggestionPrompt(title, description string, entries []model.ContextEntry) string {
	if len(entries) > maxContextEntries {
		entries = entries[:maxContextEntries]
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("[%s]: %s", entry.SourceType, entry.Content))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I have the following task:\nTitle: %q\nDescription: %q\n\n", title, description)
	b.WriteString("Here is my recent context:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(`

Based on this information, please analyze the task and provide suggestions. Respond in JSON format with the following structure:
{
  "priority_score": number (1-5, where 5 is highest priority),
  "priority_label": "Low" | "Medium" | "High",
  "suggested_deadline": "suggested deadline in natural language or ISO date string",
  "enhanced_description": "improved description with context-aware details",
  "suggested_category": "suggested category/tag for this task",
  "reasoning": "brief explanation of your suggestions"
}

Consider factors like:
- Urgency based on keywords and context
- Complexity and time requirements
- Dependencies on other work mentioned in context
- Standard business priorities`)
	return b.String()
}

func analysisPrompt(content string) string {
	return fmt.Sprintf(`Analyze the following context and extract key insights that could help with task prioritization and planning:

%q

Provide a brief summary of:
- Key themes or topics
- Urgency indicators
- People or projects mentioned
- Deadlines or time-sensitive items

Keep the response concise (2-3 sentences).`, content)
}

func fallbackSuggestion(description string) model.Suggestion {
	return model.Suggestion{
		PriorityScore:       model.DefaultPriorityScore,
		PriorityLabel:       "Medium",
		EnhancedDescription: description,
		SuggestedCategory:   "General",
		Reasoning:           FallbackReasoning,
	}
}

// rawSuggestion is the untrusted wire shape. Scores arrive as JSON numbers
// which may carry a fractional part, so they decode as float64 first.
type rawSuggestion struct {
	PriorityScore       *float64 `json:"priority_score"`
	PriorityLabel       string   `json:"priority_label"`
	SuggestedDeadline   string   `json:"suggested_deadline"`
	EnhancedDescription string   `json:"enhanced_description"`
	SuggestedCategory   string   `json:"suggested_category"`
	Reasoning           string   `json:"reasoning"`
}

func parseSuggestion(reply string) (model.Suggestion, error) {
	payload, err := extractJSON(reply)
	if err != nil {
		return model.Suggestion{}, err
	}

	var raw rawSuggestion
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return model.Suggestion{}, fmt.Errorf("ai: decode suggestion: %w", err)
	}

	if raw.PriorityScore == nil {
		return model.Suggestion{}, fmt.Errorf("ai: suggestion missing priority_score")
	}
	score := int(*raw.PriorityScore)
	if float64(score) != *raw.PriorityScore || score < model.MinPriorityScore || score > model.MaxPriorityScore {
		return model.Suggestion{}, fmt.Errorf("ai: priority_score out of range: %v", *raw.PriorityScore)
	}
	switch raw.PriorityLabel {
	case "Low", "Medium", "High":
	default:
		return model.Suggestion{}, fmt.Errorf("ai: invalid priority_label: %q", raw.PriorityLabel)
	}
	if strings.TrimSpace(raw.EnhancedDescription) == "" {
		return model.Suggestion{}, fmt.Errorf("ai: suggestion missing enhanced_description")
	}
	if strings.TrimSpace(raw.SuggestedCategory) == "" {
		return model.Suggestion{}, fmt.Errorf("ai: suggestion missing suggested_category")
	}

	return model.Suggestion{
		PriorityScore:       score,
		PriorityLabel:       raw.PriorityLabel,
		SuggestedDeadline:   raw.SuggestedDeadline,
		EnhancedDescription: raw.EnhancedDescription,
		SuggestedCategory:   raw.SuggestedCategory,
		Reasoning:           raw.Reasoning,
	}, nil
}

// extractJSON tolerates replies wrapped in markdown code fences or prose by
// slicing out the outermost JSON object.
func extractJSON(reply string) (string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("ai: no JSON object in reply")
	}
	return reply[start : end+1], nil
}
