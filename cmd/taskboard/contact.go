package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskboard/internal/contact"
	"taskboard/internal/model"
)

func (c *cli) contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "List, add and delete contacts",
	}
	cmd.AddCommand(c.contactListCmd())
	cmd.AddCommand(c.contactAddCmd())
	cmd.AddCommand(c.contactDeleteCmd())
	return cmd
}

func (c *cli) contactListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts in alphabetical order",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(output)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if _, err := c.deps.load(ctx); err != nil {
				return err
			}

			contacts := c.deps.contacts.List(ctx)
			return write(cmd.OutOrStdout(), format, contacts, func(w io.Writer) error {
				return renderContacts(w, contacts)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

func renderContacts(w io.Writer, contacts []model.Contact) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(w, "No contacts.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINITIALS\tNAME\tEMAIL\tPHONE")
	for _, ct := range contacts {
		name := ct.Username
		if ct.Type == model.ContactTypeUser {
			name += " (You)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", ct.ID, model.Initials(ct.Username), name, ct.Email, ct.Phone)
	}
	return tw.Flush()
}

func (c *cli) contactAddCmd() *cobra.Command {
	var in contact.CreateInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sc, err := c.deps.load(ctx)
			if err != nil {
				return err
			}

			ct, err := c.deps.contacts.Create(ctx, sc, in)
			if err != nil {
				if err := c.deps.retryQueued(ctx, err); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created contact %q after a retry.\n", in.Username)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created contact #%d %s.\n", ct.ID, ct.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Username, "name", "n", "", "first and last name")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&in.Phone, "phone", "p", "", "phone number")
	cmd.Flags().StringVar(&in.BgColor, "color", "", "badge color as #RRGGBB, random when empty")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func (c *cli) contactDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact and unassign it from every task",
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

			res, err := c.deps.contacts.Delete(ctx, sc, id)
			if err != nil {
				if err := c.deps.retryQueued(ctx, err); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted contact #%d, unassigned from %d task(s).\n", id, res.UnassignedTasks)
			return nil
		},
	}
}
