package dto

import "time"

// TagRequest create/update input.
type TagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagResponse tag output.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskRequest create/update input.
type TaskRequest struct {
	Title      string     `json:"title"`
	Note       string     `json:"note"`
	DueDate    *time.Time `json:"dueDate"`
	Done       *bool      `json:"done"`
	AssigneeID string     `json:"assigneeId"`
}

// TaskResponse task output.
type TaskResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Note       string     `json:"note"`
	DueDate    *time.Time `json:"dueDate"`
	Done       bool       `json:"done"`
	AssigneeID string     `json:"assigneeId"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// NotificationResponse notification output.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
