package models

// Task is a single card on the list. The client assigns ID and CreatedAt
// when the task is created; neither changes afterwards.
type Task struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Thumbnail   string `json:"thumbnail" yaml:"thumbnail"`
	CreatedAt   string `json:"createdat" yaml:"createdat"`
}
