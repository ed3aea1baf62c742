package http

import (
	"time"

	"taskboard/internal/board"
	"taskboard/internal/model"
	"taskboard/pkg/datemath"
)

const summaryDateLayout = "January 2, 2006"

type boardReq struct {
	Search string `form:"search"`
}

type badgeResp struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	BgColor  string `json:"bgcolor"`
}

type cardResp struct {
	ID             int64                 `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Prio           string                `json:"prio"`
	DueDate        string                `json:"duedate"`
	DueDateDisplay string                `json:"duedate_display"`
	Progress       model.SubtaskProgress `json:"progress"`
	Assignees      []badgeResp           `json:"assignees"`
}

type columnResp struct {
	Bucket       string     `json:"bucket"`
	Label        string     `json:"label"`
	NoTasksLabel string     `json:"no_tasks_label,omitempty"`
	Cards        []cardResp `json:"cards"`
}

type boardResp struct {
	Search    string       `json:"search,omitempty"`
	NoResults bool         `json:"no_results"`
	Columns   []columnResp `json:"columns"`
}

// newBoardResp resolves assignee IDs against contacts. IDs of deleted
// contacts are skipped.
func newBoardResp(layout board.Layout, contacts []model.Contact) boardResp {
	byID := make(map[int64]model.Contact, len(contacts))
	for _, c := range contacts {
		byID[c.ID] = c
	}

	resp := boardResp{
		Search:    layout.Term,
		NoResults: layout.NoResults,
		Columns:   make([]columnResp, 0, len(layout.Columns)),
	}
	for _, col := range layout.Columns {
		cr := columnResp{
			Bucket: string(col.Bucket),
			Label:  board.Label(col.Bucket),
			Cards:  make([]cardResp, 0, len(col.Tasks)),
		}
		if len(col.Tasks) == 0 {
			cr.NoTasksLabel = board.NoTasksLabel(col.Bucket)
		}
		for _, t := range col.Tasks {
			cr.Cards = append(cr.Cards, newCardResp(t, byID))
		}
		resp.Columns = append(resp.Columns, cr)
	}
	return resp
}

func newCardResp(t model.Task, contacts map[int64]model.Contact) cardResp {
	badges := make([]badgeResp, 0, len(t.Assigned))
	for _, id := range t.Assigned {
		c, ok := contacts[id]
		if !ok {
			continue
		}
		badges = append(badges, badgeResp{
			ID:       c.ID,
			Name:     c.Username,
			Initials: model.Initials(c.Username),
			BgColor:  c.BgColor,
		})
	}

	return cardResp{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Category:       string(t.Category),
		Prio:           string(t.Prio),
		DueDate:        t.DueDate,
		DueDateDisplay: datemath.Format(t.DueDate),
		Progress:       t.Progress(),
		Assignees:      badges,
	}
}

type summaryResp struct {
	Greeting              string         `json:"greeting"`
	Username              string         `json:"username,omitempty"`
	Counts                map[string]int `json:"counts"`
	Total                 int            `json:"total"`
	Urgent                int            `json:"urgent"`
	UpcomingUrgent        string         `json:"upcoming_urgent,omitempty"`
	UpcomingUrgentDisplay string         `json:"upcoming_urgent_display,omitempty"`
}

func newSummaryResp(s board.Summary, greeting, username string) summaryResp {
	counts := make(map[string]int, len(s.Counts))
	for b, n := range s.Counts {
		counts[string(b)] = n
	}

	resp := summaryResp{
		Greeting:       greeting,
		Username:       username,
		Counts:         counts,
		Total:          s.Total,
		Urgent:         s.Urgent,
		UpcomingUrgent: s.UpcomingUrgent,
	}
	if d, err := time.Parse(datemath.DateLayout, s.UpcomingUrgent); err == nil {
		resp.UpcomingUrgentDisplay = d.Format(summaryDateLayout)
	}
	return resp
}
