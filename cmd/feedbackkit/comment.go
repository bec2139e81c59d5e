package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

var commentsCmd = &cobra.Command{
	Use:   "comments <id>",
	Short: "List the comments on a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE:  runComments,
}

var (
	commentsPage    int
	commentsPerPage int
)

var commentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Comment on a feedback item",
	Args:  cobra.ExactArgs(2),
	RunE:  runComment,
}

var commentName string

func init() {
	commentsCmd.Flags().IntVar(&commentsPage, "page", 0, "Page number")
	commentsCmd.Flags().IntVar(&commentsPerPage, "per-page", 0, "Items per page")

	commentCmd.Flags().StringVar(&commentName, "name", "", "Display name to attach to the comment")
}

func runComments(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	comments, err := client.Comments.List(context.Background(), args[0], commentsPage, commentsPerPage)
	if err != nil {
		return err
	}

	if len(comments) == 0 {
		fmt.Println("No comments yet.")
		return nil
	}
	fmt.Print(renderComments(comments))
	return nil
}

func runComment(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	created, err := client.Comments.Create(context.Background(), args[0], models.CreateCommentRequest{
		Content:  args[1],
		UserName: commentName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Comment %s added.\n", created.ID)
	return nil
}
