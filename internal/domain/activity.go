package domain

import "time"

// ActivityEntry is one row in the recent-activity feed.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Username  string    `json:"username,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
