package main

import (
	"github.com/spf13/cobra"

	"github.com/RJD02/life-quest/internal/board"
)

var (
	folderParent      string
	folderDescription string
	folderColor       string
	folderIcon        string
	recentLimit       int

	folderCmd = &cobra.Command{
		Use:   "folder",
		Short: "Manage folders.",
	}

	folderAddCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Create a folder.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := board.NewFolder{
				Name:        args[0],
				Description: folderDescription,
				Color:       folderColor,
				Icon:        folderIcon,
			}
			if folderParent != "" {
				in.ParentID = &folderParent
			}
			f, err := lq.Board.AddFolder(in)
			if err != nil {
				return err
			}
			cmd.Printf("Created folder %s %s (%s)\n", f.Icon, f.Name, f.ID)
			return nil
		},
	}

	folderListCmd = &cobra.Command{
		Use:   "list",
		Short: "Show the folder tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(renderFolderTree(lq.Board.Folders()))
			return nil
		},
	}

	folderSetCmd = &cobra.Command{
		Use:   "set <id>",
		Short: "Update folder fields.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := board.FolderPatch{
				Name:        strFlag(cmd, "name"),
				Description: strFlag(cmd, "description"),
				Color:       strFlag(cmd, "color"),
				Icon:        strFlag(cmd, "icon"),
				ParentID:    strFlag(cmd, "parent"),
			}
			patch.MoveToRoot, _ = cmd.Flags().GetBool("root")
			return lq.Board.UpdateFolder(args[0], patch)
		},
	}

	folderRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a folder and everything inside it.",
		Long:  `Deletes a folder, its subfolders, and every project, task list, task, and comment underneath. There is no undo.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.DeleteFolder(args[0])
		},
	}

	folderToggleCmd = &cobra.Command{
		Use:   "toggle <id>",
		Short: "Expand or collapse a folder in the sidebar.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.ToggleFolderExpansion(args[0])
		},
	}

	recentCmd = &cobra.Command{
		Use:   "recent",
		Short: "Show recently active folders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range lq.Board.RecentlyModifiedFolders(recentLimit) {
				cmd.Printf("%s  %s  (%d projects, active %s)\n",
					f.Icon, f.Breadcrumb(" / "), f.ProjectCount, formatWhen(f.LastModified))
			}
			return nil
		},
	}
)

func init() {
	folderAddCmd.Flags().StringVar(&folderParent, "parent", "", "Parent folder id (omit for a root folder).")
	folderAddCmd.Flags().StringVar(&folderDescription, "description", "", "Folder description.")
	folderAddCmd.Flags().StringVar(&folderColor, "color", "", "Hex color, e.g. #3b82f6.")
	folderAddCmd.Flags().StringVar(&folderIcon, "icon", "", "Folder icon.")

	folderSetCmd.Flags().String("name", "", "New name.")
	folderSetCmd.Flags().String("description", "", "New description.")
	folderSetCmd.Flags().String("color", "", "New hex color.")
	folderSetCmd.Flags().String("icon", "", "New icon.")
	folderSetCmd.Flags().String("parent", "", "Move under this folder.")
	folderSetCmd.Flags().Bool("root", false, "Move to the root level.")

	recentCmd.Flags().IntVar(&recentLimit, "limit", 5, "Maximum folders to show.")

	folderCmd.AddCommand(folderAddCmd, folderListCmd, folderSetCmd, folderRmCmd, folderToggleCmd)
	rootCmd.AddCommand(folderCmd, recentCmd)
}
