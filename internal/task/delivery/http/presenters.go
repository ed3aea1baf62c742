package http

import (
	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/pkg/datemath"
)

// --- Request DTOs ---

type subtaskReq struct {
	Title string `json:"subtitle"`
	Done  bool   `json:"subdone"`
}

type createReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"duedate"`
	Prio        string   `json:"prio"`
	Category    string   `json:"category"`
	Bucket      string   `json:"bucket"`
	Assigned    []int64  `json:"assigned"`
	Subtasks    []string `json:"subtasks"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Prio:        model.Prio(r.Prio),
		Category:    model.Category(r.Category),
		Bucket:      model.Bucket(r.Bucket),
		Assigned:    r.Assigned,
		Subtasks:    r.Subtasks,
	}
}

// ---

type updateReq struct {
	ID          int64         `json:"-"` // populated from URI param
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	DueDate     *string       `json:"duedate"`
	Prio        *string       `json:"prio"`
	Category    *string       `json:"category"`
	Assigned    *[]int64      `json:"assigned"`
	Subtasks    *[]subtaskReq `json:"subtasks"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Assigned:    r.Assigned,
	}
	if r.Prio != nil {
		p := model.Prio(*r.Prio)
		in.Prio = &p
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		in.Category = &c
	}
	if r.Subtasks != nil {
		subs := make([]model.Subtask, len(*r.Subtasks))
		for i, s := range *r.Subtasks {
			subs[i] = model.Subtask{Title: s.Title, Done: s.Done}
		}
		in.Subtasks = &subs
	}
	return in
}

// ---

type moveReq struct {
	Bucket string `json:"bucket" binding:"required"`
}

type subtaskTitleReq struct {
	Title string `json:"subtitle"`
}

type listReq struct {
	Bucket string `form:"bucket"`
}

// --- Response DTOs ---

type taskResp struct {
	ID             int64                 `json:"id"`
	Bucket         string                `json:"bucket"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	DueDate        string                `json:"duedate"`
	DueDateDisplay string                `json:"duedate_display"`
	Prio           string                `json:"prio"`
	Category       string                `json:"category"`
	Assigned       []int64               `json:"assigned"`
	Subtasks       []subtaskReq          `json:"subtasks"`
	Progress       model.SubtaskProgress `json:"progress"`
}

func newTaskResp(t model.Task) taskResp {
	t = t.Normalized()
	subs := make([]subtaskReq, len(t.Subtasks))
	for i, s := range t.Subtasks {
		subs[i] = subtaskReq{Title: s.Title, Done: s.Done}
	}
	return taskResp{
		ID:             t.ID,
		Bucket:         string(t.Bucket),
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        t.DueDate,
		DueDateDisplay: datemath.Format(t.DueDate),
		Prio:           string(t.Prio),
		Category:       string(t.Category),
		Assigned:       t.Assigned,
		Subtasks:       subs,
		Progress:       t.Progress(),
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: items,
		Total: len(items),
	}
}
