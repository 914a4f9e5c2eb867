package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type SourceType string

const (
	SourceEmail   SourceType = "email"
	SourceMessage SourceType = "message"
	SourceNote    SourceType = "note"
	SourceMeeting SourceType = "meeting"
	SourceOther   SourceType = "other"
)

func (s SourceType) IsValid() bool {
	switch s {
	case SourceEmail, SourceMessage, SourceNote, SourceMeeting, SourceOther:
		return true
	default:
		return false
	}
}

// ContextEntry is a free-text record of daily activity used as background
// for AI suggestions. Entries are immutable except for deletion.
type ContextEntry struct {
	ID                string     `json:"id"`
	Content           string     `json:"content"`
	SourceType        SourceType `json:"source_type"`
	ProcessedInsights string     `json:"processed_insights,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (e ContextEntry) Validate() error {
	if strings.TrimSpace(e.Content) == "" {
		return errors.New("model: context content is required")
	}
	if !e.SourceType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSourceType, e.SourceType)
	}
	return nil
}
