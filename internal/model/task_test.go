package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:            "task-1",
		Title:         "Complete project proposal",
		Description:   "Finish the quarterly proposal",
		Category:      "Work",
		PriorityScore: 4,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRequiredFields(t *testing.T) {
	base := Task{
		Title:         "Title",
		Description:   "Description",
		PriorityScore: 3,
		Status:        StatusPending,
	}

	missingTitle := base
	missingTitle.Title = "   "
	if err := missingTitle.Validate(); err == nil {
		t.Fatal("expected error for blank title, got nil")
	}

	missingDesc := base
	missingDesc.Description = ""
	if err := missingDesc.Validate(); err == nil {
		t.Fatal("expected error for empty description, got nil")
	}
}

func TestTaskValidatePriorityRange(t *testing.T) {
	task := Task{
		Title:         "Title",
		Description:   "Description",
		PriorityScore: 6,
		Status:        StatusPending,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	task.PriorityScore = 0
	err = task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestTaskValidateInvalidStatus(t *testing.T) {
	task := Task{
		Title:         "Title",
		Description:   "Description",
		PriorityScore: 3,
		Status:        Status("archived"),
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestPriorityBandContains(t *testing.T) {
	cases := []struct {
		band   PriorityBand
		scores map[int]bool
	}{
		{BandLow, map[int]bool{1: true, 2: true, 3: false, 4: false, 5: false}},
		{BandMedium, map[int]bool{1: false, 2: false, 3: true, 4: false, 5: false}},
		{BandHigh, map[int]bool{1: false, 2: false, 3: false, 4: true, 5: true}},
	}
	for _, tc := range cases {
		for score, want := range tc.scores {
			if got := tc.band.Contains(score); got != want {
				t.Fatalf("band %q Contains(%d) = %v, want %v", tc.band, score, got, want)
			}
		}
	}
	if PriorityBand("urgent").IsValid() {
		t.Fatal("expected unknown band to be invalid")
	}
}

func TestSourceTypeIsValid(t *testing.T) {
	for _, valid := range []SourceType{SourceEmail, SourceMessage, SourceNote, SourceMeeting, SourceOther} {
		if !valid.IsValid() {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	if SourceType("voicemail").IsValid() {
		t.Fatal("expected unknown source type to be invalid")
	}
}
