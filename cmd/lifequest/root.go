package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/RJD02/life-quest/internal/app"
	"github.com/RJD02/life-quest/internal/config"
)

var (
	// Used for flags.
	configPath string

	appCfg config.Config
	appLog zerolog.Logger
	lq     *app.App

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lifequest",
		Short: "A gamified project board for folders, projects, and tasks.",
		Long: `LifeQuest is a command-line project board. Folders organize projects,
projects hold kanban task lists, and completing tasks earns XP. All state is
kept in a local snapshot; no server, no account.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// version/help don't need the data dir or the instance lock
			if cmd.Name() == "version" {
				return nil
			}
			var err error
			lq, err = app.New(appCfg, appLog)
			return err
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("lifequest v%s\n", version)
		},
	}
)

// Execute runs the CLI and tears down the application afterwards, flushing a
// final snapshot even when a command failed.
func Execute(cfg config.Config, logger zerolog.Logger) int {
	appCfg = cfg
	appLog = logger

	err := rootCmd.Execute()
	if lq != nil {
		if cerr := lq.Close(); cerr != nil {
			appLog.Error().Err(cerr).Msg("shutdown failed")
			if err == nil {
				err = cerr
			}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		appLog.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file.")

	rootCmd.AddCommand(versionCmd)
}
