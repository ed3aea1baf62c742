package main

import (
	"github.com/spf13/cobra"

	"taskboard/config"
	"taskboard/pkg/log"
)

// cli carries the state shared by every command of one invocation.
type cli struct {
	cfgPath string
	verbose bool

	cfg  *config.Config
	l    log.Logger
	deps *app
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "taskboard",
		Short:         "Kanban board client for the remote task storage",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}

	root.PersistentFlags().StringVarP(&c.cfgPath, "config", "c", "", "config file (default ./config/config.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log remote calls")

	root.AddCommand(c.loginCmd())
	root.AddCommand(c.registerCmd())
	root.AddCommand(c.guestCmd())
	root.AddCommand(c.logoutCmd())
	root.AddCommand(c.boardCmd())
	root.AddCommand(c.taskCmd())
	root.AddCommand(c.contactCmd())
	root.AddCommand(c.calendarAuthCmd())

	return root
}

func (c *cli) init() error {
	var err error
	if c.cfgPath != "" {
		c.cfg, err = config.LoadFile(c.cfgPath)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.l = log.Init(log.ZapConfig{
		Level:        level,
		Mode:         c.cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: c.cfg.Logger.ColorEnabled,
	})

	c.deps, err = newApp(c.cfg, c.l)
	return err
}
