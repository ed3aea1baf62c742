package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/board"
	"taskboard/internal/model"
	"taskboard/pkg/datemath"
)

// boardOut is the serialized board for json and yaml output.
type boardOut struct {
	Search    string      `json:"search,omitempty" yaml:"search,omitempty"`
	NoResults bool        `json:"no_results" yaml:"no_results"`
	Columns   []columnOut `json:"columns" yaml:"columns"`
}

type columnOut struct {
	Bucket model.Bucket `json:"bucket" yaml:"bucket"`
	Label  string       `json:"label" yaml:"label"`
	Tasks  []cardOut    `json:"tasks" yaml:"tasks"`
}

type cardOut struct {
	ID        int64    `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Category  string   `json:"category" yaml:"category"`
	Prio      string   `json:"prio" yaml:"prio"`
	DueDate   string   `json:"duedate" yaml:"duedate"`
	Progress  string   `json:"progress,omitempty" yaml:"progress,omitempty"`
	Assignees []string `json:"assignees" yaml:"assignees"`
}

func (c *cli) boardCmd() *cobra.Command {
	var search, output string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board, optionally filtered by a search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(output)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if _, err := c.deps.load(ctx); err != nil {
				return err
			}

			layout := board.View(c.deps.tasks.List(ctx), search)
			out := newBoardOut(layout, c.deps.contacts.List(ctx))
			summary := board.Summarize(c.deps.tasks.List(ctx))
			return write(cmd.OutOrStdout(), format, out, func(w io.Writer) error {
				return renderBoard(w, out, summary, time.Now().In(c.deps.loc))
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title or description")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

func newBoardOut(layout board.Layout, contacts []model.Contact) boardOut {
	byID := make(map[int64]model.Contact, len(contacts))
	for _, ct := range contacts {
		byID[ct.ID] = ct
	}

	out := boardOut{Search: layout.Term, NoResults: layout.NoResults}
	for _, col := range layout.Columns {
		co := columnOut{Bucket: col.Bucket, Label: board.Label(col.Bucket), Tasks: []cardOut{}}
		for _, t := range col.Tasks {
			card := cardOut{
				ID:        t.ID,
				Title:     t.Title,
				Category:  string(t.Category),
				Prio:      string(t.Prio),
				DueDate:   datemath.Format(t.DueDate),
				Assignees: []string{},
			}
			if p := t.Progress(); p.Total > 0 {
				card.Progress = fmt.Sprintf("%d/%d", p.Done, p.Total)
			}
			for _, id := range t.Assigned {
				if ct, ok := byID[id]; ok {
					card.Assignees = append(card.Assignees, model.Initials(ct.Username))
				}
			}
			co.Tasks = append(co.Tasks, card)
		}
		out.Columns = append(out.Columns, co)
	}
	return out
}

func renderBoard(w io.Writer, out boardOut, summary board.Summary, now time.Time) error {
	fmt.Fprintf(w, "%s! %d task(s), %d urgent.\n", board.Greeting(now.Hour()), summary.Total, summary.Urgent)
	if out.NoResults {
		fmt.Fprintf(w, "No results for %q.\n", out.Search)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range out.Columns {
		fmt.Fprintf(tw, "\n%s (%d)\n", col.Label, len(col.Tasks))
		if len(col.Tasks) == 0 {
			fmt.Fprintf(tw, "  %s\n", board.NoTasksLabel(col.Bucket))
			continue
		}
		for _, t := range col.Tasks {
			fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\t%s\t%s\n",
				t.ID, t.Title, t.Prio, t.DueDate, t.Progress, strings.Join(t.Assignees, " "))
		}
	}
	return tw.Flush()
}
