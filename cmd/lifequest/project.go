package main

import (
	"github.com/spf13/cobra"

	"github.com/RJD02/life-quest/internal/board"
	"github.com/RJD02/life-quest/internal/model"
)

var (
	projectFolder      string
	projectDescription string
	projectStatus      string
	projectPriority    string
	projectSeed        bool

	projectCmd = &cobra.Command{
		Use:   "project",
		Short: "Manage projects.",
	}

	projectAddCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project inside a folder.",
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
			p, err := lq.Board.AddProject(board.NewProject{
				Name:        args[0],
				Description: projectDescription,
				FolderID:    projectFolder,
				Status:      model.ProjectStatus(projectStatus),
				Priority:    model.ProjectPriority(projectPriority),
				DueDate:     due,
				StartDate:   start,
			})
			if err != nil {
				return err
			}
			if projectSeed {
				if err := seedDefaultLists(p.ID); err != nil {
					return err
				}
			}
			cmd.Printf("Created project %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	projectListCmd = &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally scoped to a folder.",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := lq.Board.Projects()
			if projectFolder != "" {
				projects = lq.Board.ProjectsByFolder(projectFolder)
			}
			for _, p := range projects {
				cmd.Printf("%-36s  %-10s  %3.0f%%  %d/%d tasks  %d XP  %s\n",
					p.ID, p.Status, lq.Board.ProjectProgress(p.ID),
					p.CompletedTaskCount, p.TaskCount, p.XPEarned, p.Name)
			}
			return nil
		},
	}

	projectSetCmd = &cobra.Command{
		Use:   "set <id>",
		Short: "Update project fields.",
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
			patch := board.ProjectPatch{
				Name:        strFlag(cmd, "name"),
				Description: strFlag(cmd, "description"),
				FolderID:    strFlag(cmd, "folder"),
				DueDate:     due,
				StartDate:   start,
			}
			if v := strFlag(cmd, "status"); v != nil {
				st := model.ProjectStatus(*v)
				patch.Status = &st
			}
			if v := strFlag(cmd, "priority"); v != nil {
				pr := model.ProjectPriority(*v)
				patch.Priority = &pr
			}
			return lq.Board.UpdateProject(args[0], patch)
		},
	}

	projectRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project and all its lists, tasks, and comments.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.DeleteProject(args[0])
		},
	}
)

// seedDefaultLists creates the standard kanban columns for a fresh project.
func seedDefaultLists(projectID string) error {
	for i, name := range []string{"Todo", "In Progress", "Done"} {
		_, err := lq.Board.AddTaskList(board.NewTaskList{
			Name:      name,
			ProjectID: projectID,
			Position:  i,
			IsDefault: i == 0,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	projectAddCmd.Flags().StringVar(&projectFolder, "folder", "", "Owning folder id (required).")
	projectAddCmd.Flags().StringVar(&projectDescription, "description", "", "Project description.")
	projectAddCmd.Flags().StringVar(&projectStatus, "status", "", "active, completed, on-hold, or cancelled.")
	projectAddCmd.Flags().StringVar(&projectPriority, "priority", "", "low, medium, or high.")
	projectAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD).")
	projectAddCmd.Flags().String("start", "", "Start date (YYYY-MM-DD).")
	projectAddCmd.Flags().BoolVar(&projectSeed, "seed-lists", true, "Create the default Todo/In Progress/Done lists.")
	projectAddCmd.MarkFlagRequired("folder")

	projectListCmd.Flags().StringVar(&projectFolder, "folder", "", "Only projects in this folder.")

	projectSetCmd.Flags().String("name", "", "New name.")
	projectSetCmd.Flags().String("description", "", "New description.")
	projectSetCmd.Flags().String("folder", "", "Move to this folder.")
	projectSetCmd.Flags().String("status", "", "New status.")
	projectSetCmd.Flags().String("priority", "", "New priority.")
	projectSetCmd.Flags().String("due", "", "New due date (YYYY-MM-DD).")
	projectSetCmd.Flags().String("start", "", "New start date (YYYY-MM-DD).")

	projectCmd.AddCommand(projectAddCmd, projectListCmd, projectSetCmd, projectRmCmd)
	rootCmd.AddCommand(projectCmd)
}
