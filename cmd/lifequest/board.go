package main

import (
	"github.com/spf13/cobra"
)

var (
	boardProject  string
	activityLimit int
	sessionTask   string
	sessionXP     int

	boardCmd = &cobra.Command{
		Use:   "board",
		Short: "Render a project's kanban board.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := lq.Board.Project(boardProject)
			if !ok {
				cmd.PrintErrln("Unknown project:", boardProject)
				return nil
			}
			cmd.Print(renderBoard(p, lq.Board))
			return nil
		},
	}

	activityCmd = &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range lq.Board.Activity(activityLimit) {
				cmd.Printf("[%s] %-8s %-7s %s\n", formatWhen(e.CreatedAt), e.EntityType, e.Action, e.Description)
			}
			return nil
		},
	}

	sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Record focus sessions.",
	}

	sessionDoneCmd = &cobra.Command{
		Use:   "done",
		Short: "Record a completed focus session.",
		Long:  `Records a completed focus session. With --task, the task's pomodoro count advances and its project earns the XP; without, the session is logged and the board is untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lq.Board.ApplySessionCompleted(sessionTask, sessionXP); err != nil {
				return err
			}
			title := ""
			if t, ok := lq.Board.Task(sessionTask); ok {
				title = t.Title
			}
			lq.Notifier.SendSessionComplete(title)
			return nil
		},
	}
)

func init() {
	boardCmd.Flags().StringVar(&boardProject, "project", "", "Project id (required).")
	boardCmd.MarkFlagRequired("project")

	activityCmd.Flags().IntVar(&activityLimit, "limit", 20, "Maximum entries to show (0 for all).")

	sessionDoneCmd.Flags().StringVar(&sessionTask, "task", "", "Task the session was spent on.")
	sessionDoneCmd.Flags().IntVar(&sessionXP, "xp", 10, "XP earned by the session.")

	sessionCmd.AddCommand(sessionDoneCmd)
	rootCmd.AddCommand(boardCmd, activityCmd, sessionCmd)
}
