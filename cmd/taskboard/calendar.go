package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/pkg/gcalendar"
)

func (c *cli) calendarAuthCmd() *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth [credentials.json]",
		Short: "Authorize Google Calendar access for due-date events",
		Long: `Run the OAuth desktop flow once and save the token used by the API
server to mirror task due dates into Google Calendar.`,
		Args: cobra.MaximumNArgs(1),
		// No remote config is needed here.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			flow, err := gcalendar.NewDesktopFlow(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, flow.AuthURL("taskboard"))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}
			if err := flow.Exchange(cmd.Context(), strings.TrimSpace(code), tokenPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nSaved %s. Restart the API server to enable the calendar.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.TokenFile, "where to write the OAuth token")
	return cmd
}
