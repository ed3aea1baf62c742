package model

// Bucket is the board column a task lives in.
type Bucket string

const (
	BucketToDo          Bucket = "to-do"
	BucketInProgress    Bucket = "in-progress"
	BucketAwaitFeedback Bucket = "await-feedback"
	BucketDone          Bucket = "done"
)

// Buckets lists every column in board order.
var Buckets = []Bucket{BucketToDo, BucketInProgress, BucketAwaitFeedback, BucketDone}

// IsValid reports whether b is one of the four board columns.
func (b Bucket) IsValid() bool {
	switch b {
	case BucketToDo, BucketInProgress, BucketAwaitFeedback, BucketDone:
		return true
	}
	return false
}

// Prio is the task priority.
type Prio string

const (
	PrioUrgent Prio = "Urgent"
	PrioMedium Prio = "Medium"
	PrioLow    Prio = "Low"
)

func (p Prio) IsValid() bool {
	return p == PrioUrgent || p == PrioMedium || p == PrioLow
}

// Category is the task category.
type Category string

const (
	CategoryTechnicalTask Category = "Technical Task"
	CategoryUserStory     Category = "User Story"
)

func (c Category) IsValid() bool {
	return c == CategoryTechnicalTask || c == CategoryUserStory
}

// Subtask is a checklist item inside a task.
type Subtask struct {
	Title string `json:"subtitle"`
	Done  bool   `json:"subdone"`
}

// Task is a card on the board, as stored by the remote API.
type Task struct {
	ID          int64     `json:"id"`
	Bucket      Bucket    `json:"bucket"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"duedate"` // YYYY-MM-DD
	Prio        Prio      `json:"prio"`
	Category    Category  `json:"category"`
	Assigned    []int64   `json:"assigned"` // contact IDs
	Subtasks    []Subtask `json:"subtasks"`
}

// Clone returns a deep copy so callers can't mutate store state through slices.
func (t Task) Clone() Task {
	out := t
	if t.Assigned != nil {
		out.Assigned = append([]int64(nil), t.Assigned...)
	}
	if t.Subtasks != nil {
		out.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	return out
}

// Normalized replaces null lists with empty ones so JSON output stays stable.
func (t Task) Normalized() Task {
	if t.Assigned == nil {
		t.Assigned = []int64{}
	}
	if t.Subtasks == nil {
		t.Subtasks = []Subtask{}
	}
	return t
}

// IsAssigned reports whether contactID is in the assignee list.
func (t Task) IsAssigned(contactID int64) bool {
	for _, id := range t.Assigned {
		if id == contactID {
			return true
		}
	}
	return false
}

// SubtaskProgress is the done/total summary shown on a card.
type SubtaskProgress struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Progress computes subtask completion.
func (t Task) Progress() SubtaskProgress {
	p := SubtaskProgress{Total: len(t.Subtasks)}
	for _, s := range t.Subtasks {
		if s.Done {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Done * 100 / p.Total
	}
	return p
}
