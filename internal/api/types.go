package api

// Task represents a Todoist task as returned by the REST API.
type Task struct {
	ID           string   `json:"id"`
	ProjectID    string   `json:"project_id"`
	SectionID    string   `json:"section_id,omitempty"`
	ParentID     string   `json:"parent_id,omitempty"`
	Content      string   `json:"content"`
	Description  string   `json:"description,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	Priority     int      `json:"priority,omitempty"` // 1 (normal) to 4 (urgent)
	Order        int      `json:"order,omitempty"`
	IsCompleted  bool     `json:"is_completed,omitempty"`
	Due          *Due     `json:"due,omitempty"`
	URL          string   `json:"url,omitempty"`
	CommentCount int      `json:"comment_count,omitempty"`
	CreatorID    string   `json:"creator_id,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"` // RFC 3339
}

// Due represents a task due date.
type Due struct {
	Date        string `json:"date"` // YYYY-MM-DD
	String      string `json:"string,omitempty"`
	Lang        string `json:"lang,omitempty"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
	Datetime    string `json:"datetime,omitempty"` // RFC 3339
	Timezone    string `json:"timezone,omitempty"`
}

// Project represents a Todoist project.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ParentID       string `json:"parent_id,omitempty"`
	Order          int    `json:"order,omitempty"`
	Color          string `json:"color,omitempty"`
	CommentCount   int    `json:"comment_count,omitempty"`
	IsShared       bool   `json:"is_shared,omitempty"`
	IsFavorite     bool   `json:"is_favorite,omitempty"`
	IsInboxProject bool   `json:"is_inbox_project,omitempty"`
	ViewStyle      string `json:"view_style,omitempty"`
	URL            string `json:"url,omitempty"`
}

// CreateTaskRequest is the body for POST /tasks.
//
// Labels and Description are pointers so that "not supplied" (nil, key
// omitted from the body) is distinct from "supplied as empty" (non-nil,
// key sent). The remote API overwrites any field present in the body and
// leaves absent fields untouched.
type CreateTaskRequest struct {
	Content     string    `json:"content"`
	ProjectID   string    `json:"project_id"`
	Labels      *[]string `json:"labels,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// UpdateTaskRequest is the body for POST /tasks/{id}. Only non-nil fields
// are included, preserving partial-update semantics.
type UpdateTaskRequest struct {
	Labels      *[]string `json:"labels,omitempty"`
	Description *string   `json:"description,omitempty"`
}
