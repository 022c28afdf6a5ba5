package models

import "time"

// TaskNote is an activity entry on a task's history feed.
type TaskNote struct {
	ID        int       `json:"id"`
	TaskTitle string    `json:"task_title"`
	Author    string    `json:"author"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskNoteRequest represents the request body for adding a note
type CreateTaskNoteRequest struct {
	Author string `json:"author"`
	Note   string `json:"note"`
}
