// Package deadline classifies task deadlines into notification urgency
// buckets and builds the notification list shown to the user.
package deadline

import (
	"sort"
	"time"

	"github.com/sandeepkv93/taskflowd/internal/model"
)

type Bucket string

const (
	BucketNone        Bucket = "none"
	BucketOverdue     Bucket = "overdue"
	BucketDueToday    Bucket = "due_today"
	BucketDueTomorrow Bucket = "due_tomorrow"
	BucketFuture      Bucket = "future"
)

// Glyph kinds keyed by bucket, rendered by the views package.
type GlyphKind string

const (
	GlyphAlert        GlyphKind = "alert"
	GlyphCalendarWarn GlyphKind = "calendar-warn"
	GlyphCalendarInfo GlyphKind = "calendar-info"
)

// MaxNotifications caps the notification list at the 10 earliest deadlines.
const MaxNotifications = 10

// Classify maps a deadline to its urgency bucket relative to now. Rules are
// evaluated in order, first match wins: absent deadlines are none, strictly
// past ones overdue, then same calendar day, next calendar day, future.
func Classify(deadline *time.Time, now time.Time) Bucket {
	if deadline == nil {
		return BucketNone
	}
	d := deadline.In(now.Location())
	switch {
	case d.Before(now):
		return BucketOverdue
	case sameDay(d, now):
		return BucketDueToday
	case sameDay(d, now.AddDate(0, 0, 1)):
		return BucketDueTomorrow
	default:
		return BucketFuture
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (b Bucket) Glyph() GlyphKind {
	switch b {
	case BucketOverdue:
		return GlyphAlert
	case BucketDueToday:
		return GlyphCalendarWarn
	default:
		return GlyphCalendarInfo
	}
}

// Label returns the human deadline label: Overdue, Due today, Due tomorrow,
// or the literal calendar date for anything further out.
func Label(bucket Bucket, deadline time.Time) string {
	switch bucket {
	case BucketOverdue:
		return "Overdue"
	case BucketDueToday:
		return "Due today"
	case BucketDueTomorrow:
		return "Due tomorrow"
	default:
		return deadline.Format("Jan 2, 2006")
	}
}

// Notification is one entry of the upcoming-deadlines list.
type Notification struct {
	Task   model.Task
	Bucket Bucket
	Glyph  GlyphKind
	Label  string
}

// Notifications returns the notification-worthy tasks: bucket in {overdue,
// due_today, due_tomorrow} and status not completed, ascending by deadline,
// truncated to the 10 earliest.
func Notifications(tasks []model.Task, now time.Time) []Notification {
	out := make([]Notification, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == model.StatusCompleted {
			continue
		}
		bucket := Classify(task.Deadline, now)
		switch bucket {
		case BucketOverdue, BucketDueToday, BucketDueTomorrow:
			out = append(out, Notification{
				Task:   task,
				Bucket: bucket,
				Glyph:  bucket.Glyph(),
				Label:  Label(bucket, *task.Deadline),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Task.Deadline.Before(*out[j].Task.Deadline)
	})
	if len(out) > MaxNotifications {
		out = out[:MaxNotifications]
	}
	return out
}
