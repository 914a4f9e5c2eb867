package model

const DefaultCategoryColor = "#6B7280"

// Category is a display label for grouping tasks. UsageCount tracks how many
// tasks were ever created under the category name; it is never decremented
// when tasks are deleted, so it approximates lifetime popularity rather than
// a current count.
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
	Color      string `json:"color,omitempty"`
}
