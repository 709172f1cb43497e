package main

import (
	"github.com/spf13/cobra"

	"github.com/RJD02/life-quest/internal/board"
)

var (
	commentAuthor string

	commentCmd = &cobra.Command{
		Use:   "comment",
		Short: "Manage task comments.",
	}

	commentAddCmd = &cobra.Command{
		Use:   "add <task-id> <content>",
		Short: "Comment on a task.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			author := commentAuthor
			if author == "" {
				author = appCfg.Actor
			}
			c, err := lq.Board.AddComment(board.NewComment{
				TaskID:     args[0],
				AuthorID:   appCfg.Actor,
				AuthorName: author,
				Content:    args[1],
			})
			if err != nil {
				return err
			}
			cmd.Printf("Added comment %s\n", c.ID)
			return nil
		},
	}

	commentListCmd = &cobra.Command{
		Use:   "list <task-id>",
		Short: "Show a task's comments, oldest first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range lq.Board.CommentsForTask(args[0]) {
				cmd.Printf("[%s] %s (%s): %s\n", formatWhen(c.CreatedAt), c.AuthorName, c.ID, c.Content)
			}
			return nil
		},
	}

	commentEditCmd = &cobra.Command{
		Use:   "edit <id> <content>",
		Short: "Replace a comment's content.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.UpdateComment(args[0], args[1])
		},
	}

	commentRmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a comment.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lq.Board.DeleteComment(args[0])
		},
	}
)

func init() {
	commentAddCmd.Flags().StringVar(&commentAuthor, "author", "", "Display name for the comment (defaults to the configured actor).")

	commentCmd.AddCommand(commentAddCmd, commentListCmd, commentEditCmd, commentRmCmd)
	rootCmd.AddCommand(commentCmd)
}
