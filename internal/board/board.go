// Package board partitions a task snapshot into columns for rendering.
// Every function is pure and does a linear pass per bucket.
package board

import (
	"sort"
	"strings"

	"taskboard/internal/model"
)

// Buckets is the fixed column order.
var Buckets = model.Buckets

// Partition returns one column per bucket. Tasks keep their relative order.
func Partition(tasks []model.Task) []Column {
	columns := make([]Column, 0, len(Buckets))
	for _, b := range Buckets {
		col := Column{Bucket: b, Tasks: []model.Task{}}
		for _, t := range tasks {
			if t.Bucket == b {
				col.Tasks = append(col.Tasks, t)
			}
		}
		columns = append(columns, col)
	}
	return columns
}

// Filter keeps tasks whose title or description contains term, ignoring
// case. A blank term returns tasks unchanged.
func Filter(tasks []model.Task, term string) []model.Task {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return tasks
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Description), term) {
			out = append(out, t)
		}
	}
	return out
}

// View filters and partitions tasks.
func View(tasks []model.Task, term string) Layout {
	term = strings.TrimSpace(term)
	filtered := Filter(tasks, term)
	return Layout{
		Term:      term,
		Columns:   Partition(filtered),
		NoResults: term != "" && len(filtered) == 0,
	}
}

// Summarize counts tasks per bucket and finds the most pressing urgent due date.
func Summarize(tasks []model.Task) Summary {
	s := Summary{Counts: make(map[model.Bucket]int, len(Buckets))}
	for _, b := range Buckets {
		s.Counts[b] = 0
	}

	var urgentDates []string
	for _, t := range tasks {
		s.Total++
		s.Counts[t.Bucket]++
		if t.Prio == model.PrioUrgent {
			s.Urgent++
			if t.DueDate != "" {
				urgentDates = append(urgentDates, t.DueDate)
			}
		}
	}

	// YYYY-MM-DD sorts chronologically as text.
	if len(urgentDates) > 0 {
		sort.Strings(urgentDates)
		s.UpcomingUrgent = urgentDates[0]
	}
	return s
}

// Greeting returns the salutation for the given hour of day.
func Greeting(hour int) string {
	switch {
	case hour >= 4 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Label turns a bucket into display text: "to-do" becomes "To do".
func Label(b model.Bucket) string {
	s := strings.Replace(string(b), "-", " ", 1)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NoTasksLabel is the placeholder shown in an empty column.
func NoTasksLabel(b model.Bucket) string {
	return "No tasks " + Label(b)
}
