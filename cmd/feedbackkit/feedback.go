package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback items",
	RunE:  runList,
}

var (
	listStatus   string
	listCategory string
	listPage     int
	listPerPage  int
	listJSON     bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one feedback item with its comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit new feedback",
	RunE:  runSubmit,
}

var (
	submitTitle       string
	submitDescription string
	submitCategory    string
	submitEmail       string
)

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, approved, in_progress, testflight, completed, rejected)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (feature_request, bug_report, improvement, other)")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "Items per page")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	submitCmd.Flags().StringVar(&submitTitle, "title", "", "Feedback title (required)")
	submitCmd.Flags().StringVar(&submitDescription, "description", "", "Feedback description (required)")
	submitCmd.Flags().StringVar(&submitCategory, "category", "other", "Feedback category")
	submitCmd.Flags().StringVar(&submitEmail, "email", "", "Contact email")
	submitCmd.MarkFlagRequired("title")
	submitCmd.MarkFlagRequired("description")
}

func runList(cmd *cobra.Command, args []string) error {
	opts := models.ListFeedbackOptions{Page: listPage, PerPage: listPerPage}
	if listStatus != "" {
		status, ok := models.ParseFeedbackStatus(listStatus)
		if !ok {
			return fmt.Errorf("unknown status %q", listStatus)
		}
		opts.Status = status
	}
	if listCategory != "" {
		category, ok := models.ParseFeedbackCategory(listCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", listCategory)
		}
		opts.Category = category
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	items, err := client.Feedback.List(context.Background(), opts)
	if err != nil {
		return err
	}

	if listJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("No feedback found.")
		return nil
	}

	headers := []string{"ID", "VOTES", "STATUS", "CATEGORY", "COMMENTS", "TITLE"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			voteCell(item),
			statusBadge(item.Status),
			categoryBadge(item.Category),
			strconv.Itoa(item.CommentCount),
			item.Title,
		})
	}
	fmt.Print(formatTable(headers, rows))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()
	item, err := client.Feedback.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Print(renderDetail(*item))

	if item.CommentCount > 0 {
		comments, err := client.Comments.List(ctx, item.ID, 0, 0)
		if err != nil {
			return err
		}
		fmt.Print(renderComments(comments))
	}
	return nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	category, ok := models.ParseFeedbackCategory(submitCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", submitCategory)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	created, err := client.Feedback.Create(context.Background(), models.CreateFeedbackRequest{
		Title:       submitTitle,
		Description: submitDescription,
		Category:    category,
		Email:       submitEmail,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Submitted %s %s\n", created.ID, created.Title)
	return nil
}
