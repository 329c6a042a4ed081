package models

import "time"

// PostCategory classifies a post.
type PostCategory string

// Supported post categories
const (
	CategoryDevelopment   PostCategory = "development"
	CategoryDesign        PostCategory = "design"
	CategoryAccessibility PostCategory = "accessibility"
)

// Valid reports whether c is one of the supported categories.
func (c PostCategory) Valid() bool {
	switch c {
	case CategoryDevelopment, CategoryDesign, CategoryAccessibility:
		return true
	}
	return false
}

// PostStatus is the lifecycle state of a post.
type PostStatus string

// Supported post statuses
const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

// Valid reports whether s is one of the supported post statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostPublished, PostArchived:
		return true
	}
	return false
}

// Post represents a post record
type Post struct {
	ID        int64        `json:"id" db:"id"`                // Server-assigned identifier
	Title     string       `json:"title" db:"title"`          // Post title
	Content   string       `json:"content" db:"content"`      // Post body, may be empty
	Author    string       `json:"author" db:"author"`        // Author display name
	Category  PostCategory `json:"category" db:"category"`    // Post category
	Status    PostStatus   `json:"status" db:"status"`        // Lifecycle state
	Views     int64        `json:"views" db:"views"`          // View counter, server-assigned
	CreatedAt time.Time    `json:"createdAt" db:"created_at"` // Creation timestamp, immutable
}

// PostInput is the editable field set of a post, shared by create and update.
type PostInput struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Author   string       `json:"author"`
	Category PostCategory `json:"category"`
	Status   PostStatus   `json:"status"`
}

// Input returns the editable fields of p.
func (p Post) Input() PostInput {
	return PostInput{
		Title:    p.Title,
		Content:  p.Content,
		Author:   p.Author,
		Category: p.Category,
		Status:   p.Status,
	}
}
