package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"taskboard/internal/model"
	"taskboard/internal/task"
)

func (c *cli) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add, move and delete tasks",
	}
	cmd.AddCommand(c.taskAddCmd())
	cmd.AddCommand(c.taskMoveCmd())
	cmd.AddCommand(c.taskDeleteCmd())
	return cmd
}

func (c *cli) taskAddCmd() *cobra.Command {
	var (
		in       task.CreateInput
		prio     string
		category string
		bucket   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Long: `Create a task on the board.

Examples:
  taskboard task add --title "Login page" --due 2026-11-01 --category "User Story" --prio Urgent
  taskboard task add -t "Write docs" --due 2026-11-03 --category "Technical Task" --assign 3 --assign 5 --subtask "API" --subtask "CLI"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sc, err := c.deps.load(ctx)
			if err != nil {
				return err
			}
			in.Prio = model.Prio(prio)
			in.Category = model.Category(category)
			in.Bucket = model.Bucket(bucket)

			t, err := c.deps.tasks.Create(ctx, sc, in)
			if err != nil {
				if err := c.deps.retryQueued(ctx, err); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created task %q after a retry.\n", in.Title)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d %q in %s.\n", t.ID, t.Title, t.Bucket)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "task title")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "task description")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&prio, "prio", string(model.PrioMedium), "Urgent, Medium or Low")
	cmd.Flags().StringVar(&category, "category", "", `"Technical Task" or "User Story"`)
	cmd.Flags().StringVar(&bucket, "bucket", string(model.BucketToDo), "board column")
	cmd.Flags().Int64SliceVar(&in.Assigned, "assign", nil, "contact ID to assign, repeatable")
	cmd.Flags().StringSliceVar(&in.Subtasks, "subtask", nil, "subtask title, repeatable")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func (c *cli) taskMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <bucket>",
		Short: "Move a task to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			sc, err := c.deps.load(ctx)
			if err != nil {
				return err
			}

			if _, err := c.deps.tasks.MoveBucket(ctx, sc, id, model.Bucket(args[1])); err != nil {
				if err := c.deps.retryQueued(ctx, err); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved task #%d to %s.\n", id, args[1])
			return nil
		},
	}
}

func (c *cli) taskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			sc, err := c.deps.load(ctx)
			if err != nil {
				return err
			}

			if err := c.deps.tasks.Delete(ctx, sc, id); err != nil {
				if err := c.deps.retryQueued(ctx, err); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d.\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
