package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/model"
	"taskboard/internal/session"
)

func (c *cli) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.deps.sessions.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return c.greet(cmd, s)
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) registerCmd() *cobra.Command {
	var in session.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.deps.sessions.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.greet(cmd, s)
		},
	}

	cmd.Flags().StringVarP(&in.Username, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&in.RepeatedPassword, "repeat", "", "password confirmation")
	for _, f := range []string{"name", "email", "password", "repeat"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (c *cli) guestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guest",
		Short: "Start a guest session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.deps.sessions.Guest(cmd.Context())
			if err != nil {
				return err
			}
			return c.greet(cmd, s)
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.deps.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func (c *cli) greet(cmd *cobra.Command, s model.Session) error {
	name := s.Username
	if name == "" {
		name = s.Email
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", name)
	return err
}
