package main

import (
	"github.com/spf13/cobra"

	"github.com/RJD02/life-quest/internal/board"
)

var (
	listProject     string
	listDescription string
	listColor       string
	listPosition    int
	listDefault     bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Manage task lists (kanban columns).",
	}

	listAddCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Create a task list in a project.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lq.Board.AddTaskList(board.NewTaskList{
				Name:        args[0],
				Description: listDescription,
				ProjectID:   listProject,
				Position:    listPosition,
				Color:       listColor,
				IsDefault:   listDefault,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Created list %s (%s) at position %d\n", l.Name, l.ID, l.Position)
			return nil
		},
	}

	listShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show a project's lists in board order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range lq.Board.TaskListsByProject(listProject) {
				marker := " "
				if l.IsDefault {
					marker = "*"
				}
				cmd.Printf("%s %-36s  pos %d  %d tasks  %s\n", marker, l.ID, l.Position, l.TaskCount, l.Name)
			}
			return nil
		},
	}

	listReorderCmd = &cobra.Command{
		Use:   "reorder <list-id>...",
		Short: "Reorder a project's lists left to right.",
		Long:  `Rewrites the position of each named list to its place in the argument order. Every id must belong to the given project.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.ReorderTaskLists(listProject, args)
		},
	}

	listSetCmd = &cobra.Command{
		Use:   "set <id>",
		Short: "Update list fields.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.UpdateTaskList(args[0], board.TaskListPatch{
				Name:        strFlag(cmd, "name"),
				Description: strFlag(cmd, "description"),
				Color:       strFlag(cmd, "color"),
				IsDefault:   boolFlag(cmd, "default"),
			})
		},
	}

	listRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a list and the tasks inside it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.DeleteTaskList(args[0])
		},
	}
)

func init() {
	listAddCmd.Flags().StringVar(&listProject, "project", "", "Owning project id (required).")
	listAddCmd.Flags().StringVar(&listDescription, "description", "", "List description.")
	listAddCmd.Flags().StringVar(&listColor, "color", "", "Hex color.")
	listAddCmd.Flags().IntVar(&listPosition, "position", -1, "Position (default appends to the right).")
	listAddCmd.Flags().BoolVar(&listDefault, "default", false, "Mark as the project's default list.")
	listAddCmd.MarkFlagRequired("project")

	listShowCmd.Flags().StringVar(&listProject, "project", "", "Project id (required).")
	listShowCmd.MarkFlagRequired("project")

	listReorderCmd.Flags().StringVar(&listProject, "project", "", "Project id (required).")
	listReorderCmd.MarkFlagRequired("project")

	listSetCmd.Flags().String("name", "", "New name.")
	listSetCmd.Flags().String("description", "", "New description.")
	listSetCmd.Flags().String("color", "", "New hex color.")
	listSetCmd.Flags().Bool("default", false, "Mark or unmark as default.")

	listCmd.AddCommand(listAddCmd, listShowCmd, listReorderCmd, listSetCmd, listRmCmd)
	rootCmd.AddCommand(listCmd)
}
