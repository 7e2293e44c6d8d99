package entity

import "time"

// Tag labels customers (VIP, repeat, corporate...). Name is unique,
// case-sensitive exact match.
type Tag struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a to-do item on an agent's board.
type Task struct {
	ID         string
	Title      string
	Note       string
	DueDate    *time.Time
	Done       bool
	AssigneeID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Notification is owned by exactly one user; only that user may mark it read.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}
