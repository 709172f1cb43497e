package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RJD02/life-quest/internal/board"
	"github.com/RJD02/life-quest/internal/model"
)

var (
	taskList     string
	taskPosition int

	taskCmd = &cobra.Command{
		Use:   "task",
		Short: "Manage tasks.",
	}

	taskAddCmd = &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task in a list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := dateFlag(cmd, "due")
			if err != nil {
				return err
			}
			start, err := dateFlag(cmd, "start")
			if err != nil {
				return err
			}
			in := board.NewTask{
				Title:     args[0],
				ListID:    taskList,
				Position:  taskPosition,
				DueDate:   due,
				StartDate: start,
			}
			if v := strFlag(cmd, "description"); v != nil {
				in.Description = *v
			}
			if v := strFlag(cmd, "priority"); v != nil {
				in.Priority = model.TaskPriority(*v)
			}
			if v := strFlag(cmd, "type"); v != nil {
				in.Type = model.TaskType(*v)
			}
			if v := strFlag(cmd, "labels"); v != nil {
				in.Labels = splitLabels(*v)
			}
			in.StoryPoints = intFlag(cmd, "points")
			if v := intFlag(cmd, "xp"); v != nil {
				in.XPValue = *v
			}
			if v := intFlag(cmd, "pomodoros"); v != nil {
				in.EstimatedPomodoros = *v
			}
			if v := floatFlag(cmd, "estimate"); v != nil {
				in.OriginalEstimate = *v
			}
			t, err := lq.Board.AddTask(in)
			if err != nil {
				return err
			}
			cmd.Printf("Created task %s (%s)\n", t.Title, t.ID)
			return nil
		},
	}

	taskShowCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task in full.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := lq.Board.Task(args[0])
			if !ok {
				return board.ErrNotFound
			}
			cmd.Print(renderTask(t, lq.Board.CommentsForTask(t.ID)))
			return nil
		},
	}

	taskSetCmd = &cobra.Command{
		Use:   "set <id>",
		Short: "Update task fields.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := dateFlag(cmd, "due")
			if err != nil {
				return err
			}
			start, err := dateFlag(cmd, "start")
			if err != nil {
				return err
			}
			patch := board.TaskPatch{
				Title:              strFlag(cmd, "title"),
				Description:        strFlag(cmd, "description"),
				OriginalEstimate:   floatFlag(cmd, "estimate"),
				TimeSpent:          floatFlag(cmd, "spent"),
				RemainingEstimate:  floatFlag(cmd, "remaining"),
				DueDate:            due,
				StartDate:          start,
				AssigneeID:         strFlag(cmd, "assignee"),
				ReporterID:         strFlag(cmd, "reporter"),
				StoryPoints:        intFlag(cmd, "points"),
				XPValue:            intFlag(cmd, "xp"),
				EstimatedPomodoros: intFlag(cmd, "pomodoros"),
				Position:           intFlag(cmd, "position"),
			}
			if v := strFlag(cmd, "status"); v != nil {
				st := model.TaskStatus(*v)
				patch.Status = &st
			}
			if v := strFlag(cmd, "priority"); v != nil {
				pr := model.TaskPriority(*v)
				patch.Priority = &pr
			}
			if v := strFlag(cmd, "type"); v != nil {
				ty := model.TaskType(*v)
				patch.Type = &ty
			}
			if v := strFlag(cmd, "labels"); v != nil {
				labels := splitLabels(*v)
				patch.Labels = &labels
			}
			return lq.Board.UpdateTask(args[0], patch)
		},
	}

	taskMoveCmd = &cobra.Command{
		Use:   "move <id>",
		Short: "Move a task to another list.",
		Long:  `Moves a task to the given list at the given position. Moving to a list of a different project carries the task across projects.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.MoveTask(args[0], taskList, taskPosition)
		},
	}

	taskDoneCmd = &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task and earn its XP.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lq.Board.CompleteTask(args[0]); err != nil {
				return err
			}
			t, ok := lq.Board.Task(args[0])
			if ok {
				cmd.Printf("Done: %s (+%d XP)\n", t.Title, t.XPValue)
			}
			return nil
		},
	}

	taskBlockCmd = &cobra.Command{
		Use:   "block <id>",
		Short: "Mark a task blocked.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.BlockTask(args[0])
		},
	}

	taskUnblockCmd = &cobra.Command{
		Use:   "unblock <id>",
		Short: "Return a blocked task to its previous status.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.UnblockTask(args[0])
		},
	}

	taskRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task and its comments.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.DeleteTask(args[0])
		},
	}

	taskDueCmd = &cobra.Command{
		Use:   "due",
		Short: "List overdue tasks and send reminders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 0
			for _, t := range allOpenTasks() {
				if !t.IsOverdue() {
					continue
				}
				count++
				cmd.Printf("%-36s  due %s  %s\n", t.ID, formatWhen(*t.DueDate), t.Title)
				lq.Notifier.SendDueReminder(t.Title, time.Until(*t.DueDate))
			}
			if count == 0 {
				cmd.Println("Nothing overdue.")
			}
			return nil
		},
	}
)

// allOpenTasks collects the not-done tasks of every project.
func allOpenTasks() []model.Task {
	var out []model.Task
	for _, p := range lq.Board.Projects() {
		for _, t := range lq.Board.TasksByProject(p.ID) {
			if t.Status != model.StatusDone {
				out = append(out, t)
			}
		}
	}
	return out
}

func splitLabels(s string) []string {
	var out []string
	for _, l := range strings.Split(s, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func init() {
	taskAddCmd.Flags().StringVar(&taskList, "list", "", "Owning task list id (required).")
	taskAddCmd.Flags().IntVar(&taskPosition, "position", -1, "Position (default appends at the bottom).")
	taskAddCmd.Flags().String("description", "", "Task description.")
	taskAddCmd.Flags().String("priority", "", "lowest, low, medium, high, or highest.")
	taskAddCmd.Flags().String("type", "", "task, story, bug, epic, or subtask.")
	taskAddCmd.Flags().String("labels", "", "Comma-separated labels.")
	taskAddCmd.Flags().Int("points", 0, "Story points.")
	taskAddCmd.Flags().Int("xp", 0, "XP awarded on completion.")
	taskAddCmd.Flags().Int("pomodoros", 0, "Estimated focus sessions.")
	taskAddCmd.Flags().Float64("estimate", 0, "Original estimate in hours.")
	taskAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD).")
	taskAddCmd.Flags().String("start", "", "Start date (YYYY-MM-DD).")
	taskAddCmd.MarkFlagRequired("list")

	taskSetCmd.Flags().String("title", "", "New title.")
	taskSetCmd.Flags().String("description", "", "New description.")
	taskSetCmd.Flags().String("status", "", "todo, in-progress, review, testing, done, or blocked.")
	taskSetCmd.Flags().String("priority", "", "New priority.")
	taskSetCmd.Flags().String("type", "", "New type.")
	taskSetCmd.Flags().String("labels", "", "Replacement comma-separated labels.")
	taskSetCmd.Flags().Int("points", 0, "Story points.")
	taskSetCmd.Flags().Int("xp", 0, "XP awarded on completion.")
	taskSetCmd.Flags().Int("pomodoros", 0, "Estimated focus sessions.")
	taskSetCmd.Flags().Int("position", 0, "Position within the list.")
	taskSetCmd.Flags().Float64("estimate", 0, "Original estimate in hours.")
	taskSetCmd.Flags().Float64("spent", 0, "Time spent in hours.")
	taskSetCmd.Flags().Float64("remaining", 0, "Remaining estimate in hours.")
	taskSetCmd.Flags().String("assignee", "", "Assignee id.")
	taskSetCmd.Flags().String("reporter", "", "Reporter id.")
	taskSetCmd.Flags().String("due", "", "New due date (YYYY-MM-DD).")
	taskSetCmd.Flags().String("start", "", "New start date (YYYY-MM-DD).")

	taskMoveCmd.Flags().StringVar(&taskList, "list", "", "Destination list id (required).")
	taskMoveCmd.Flags().IntVar(&taskPosition, "position", 0, "Position in the destination list.")
	taskMoveCmd.MarkFlagRequired("list")

	taskCmd.AddCommand(taskAddCmd, taskShowCmd, taskSetCmd, taskMoveCmd, taskDoneCmd,
		taskBlockCmd, taskUnblockCmd, taskRmCmd, taskDueCmd)
	rootCmd.AddCommand(taskCmd)
}
