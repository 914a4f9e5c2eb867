package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflowd/internal/deadline"
	"github.com/sandeepkv93/taskflowd/internal/model"
	"github.com/sandeepkv93/taskflowd/internal/views"
)

var notifyAddr string

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Print the current deadline notifications once",
	RunE: func(cmd *cobra.Command, args []string) error {
		var notifications []deadline.Notification
		if notifyAddr != "" {
			fetched, err := fetchNotifications(notifyAddr)
			if err != nil {
				return err
			}
			notifications = fetched
		} else {
			st := newStore()
			notifications = deadline.Notifications(st.ListTasks(), time.Now().UTC())
		}

		fmt.Println(views.RenderNotifications(notifications))
		return nil
	},
}

func init() {
	notifyCmd.Flags().StringVar(&notifyAddr, "addr", "", "Base URL of a running taskflowd server (e.g. http://localhost:8080)")
}

func fetchNotifications(base string) ([]deadline.Notification, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(base + "/api/notifications")
	if err != nil {
		return nil, fmt.Errorf("fetch notifications: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch notifications: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Notifications []struct {
			Task   model.Task         `json:"task"`
			Bucket deadline.Bucket    `json:"bucket"`
			Glyph  deadline.GlyphKind `json:"glyph"`
			Label  string             `json:"label"`
		} `json:"notifications"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}

	out := make([]deadline.Notification, 0, len(payload.Notifications))
	for _, n := range payload.Notifications {
		out = append(out, deadline.Notification{Task: n.Task, Bucket: n.Bucket, Glyph: n.Glyph, Label: n.Label})
	}
	return out, nil
}
