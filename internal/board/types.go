package board

import "taskboard/internal/model"

// Column is one bucket of the board with its tasks in store order.
type Column struct {
	Bucket model.Bucket
	Tasks  []model.Task
}

// Layout is the rendered board. NoResults is set when a search term is active
// and no task matched it.
type Layout struct {
	Term      string
	Columns   []Column
	NoResults bool
}

// Summary holds the numbers shown on the summary page.
type Summary struct {
	Counts map[model.Bucket]int
	Total  int
	Urgent int
	// UpcomingUrgent is the earliest due date (YYYY-MM-DD) among urgent tasks,
	// empty when there are none.
	UpcomingUrgent string
}
