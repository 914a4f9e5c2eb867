package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus     = errors.New("model: invalid task status")
	ErrInvalidPriority   = errors.New("model: priority score must be between 1 and 5")
	ErrInvalidSourceType = errors.New("model: invalid context source type")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

const (
	MinPriorityScore     = 1
	MaxPriorityScore     = 5
	DefaultPriorityScore = 3
)

// PriorityBand groups priority scores for filtering: low={1,2}, medium={3}, high={4,5}.
type PriorityBand string

const (
	BandLow    PriorityBand = "low"
	BandMedium PriorityBand = "medium"
	BandHigh   PriorityBand = "high"
)

func (b PriorityBand) IsValid() bool {
	switch b {
	case BandLow, BandMedium, BandHigh:
		return true
	default:
		return false
	}
}

func (b PriorityBand) Contains(score int) bool {
	switch b {
	case BandLow:
		return score == 1 || score == 2
	case BandMedium:
		return score == 3
	case BandHigh:
		return score == 4 || score == 5
	default:
		return false
	}
}

type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	PriorityScore int        `json:"priority_score"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("model: task description is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.PriorityScore < MinPriorityScore || t.PriorityScore > MaxPriorityScore {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, t.PriorityScore)
	}
	return nil
}

// TaskUpdate is a partial task mutation: nil fields keep the existing value.
type TaskUpdate struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Category      *string    `json:"category,omitempty"`
	PriorityScore *int       `json:"priority_score,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Status        *Status    `json:"status,omitempty"`
}
