package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

const detailWidth = 72

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	votedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	officialTag  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	badgePadding = lipgloss.NewStyle().Padding(0, 1)

	statusColors = map[models.FeedbackStatus]lipgloss.Color{
		models.StatusPending:    lipgloss.Color("3"),
		models.StatusApproved:   lipgloss.Color("4"),
		models.StatusInProgress: lipgloss.Color("5"),
		models.StatusTestflight: lipgloss.Color("6"),
		models.StatusCompleted:  lipgloss.Color("2"),
		models.StatusRejected:   lipgloss.Color("1"),
	}

	categoryColors = map[models.FeedbackCategory]lipgloss.Color{
		models.CategoryFeatureRequest: lipgloss.Color("4"),
		models.CategoryBugReport:      lipgloss.Color("1"),
		models.CategoryImprovement:    lipgloss.Color("6"),
		models.CategoryOther:          lipgloss.Color("244"),
	}
)

func statusBadge(status models.FeedbackStatus) string {
	color, ok := statusColors[status]
	if !ok {
		return badgePadding.Render(status.DisplayName())
	}
	return badgePadding.Foreground(color).Render(status.DisplayName())
}

func categoryBadge(category models.FeedbackCategory) string {
	color, ok := categoryColors[category]
	if !ok {
		return badgePadding.Render(category.DisplayName())
	}
	return badgePadding.Foreground(color).Render(category.DisplayName())
}

func voteCell(item models.Feedback) string {
	cell := fmt.Sprintf("%3d", item.VoteCount)
	if item.HasVoted {
		return votedStyle.Render("▲" + cell)
	}
	return " " + cell
}

func renderDetail(item models.Feedback) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(item.Title))
	b.WriteByte('\n')
	b.WriteString(statusBadge(item.Status))
	b.WriteString(categoryBadge(item.Category))
	fmt.Fprintf(&b, "  %s votes, %d comments\n", strings.TrimSpace(voteCell(item)), item.CommentCount)
	if item.CreatedAt != "" {
		b.WriteString(mutedStyle.Render("created "+item.CreatedAt) + "\n")
	}
	b.WriteByte('\n')
	b.WriteString(wordwrap.String(item.Description, detailWidth))
	b.WriteByte('\n')
	return b.String()
}

func renderComments(comments []models.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%d comment(s)\n", len(comments))
	for _, comment := range comments {
		author := comment.UserName
		if author == "" {
			author = "anonymous"
		}
		header := author
		if comment.IsOfficial {
			header += " " + officialTag.Render("official")
		}
		if comment.CreatedAt != "" {
			header += " " + mutedStyle.Render(comment.CreatedAt)
		}
		b.WriteByte('\n')
		b.WriteString(header + "\n")
		b.WriteString(wordwrap.String(comment.Content, detailWidth) + "\n")
	}
	return b.String()
}

// formatTable renders padded columns, accounting for ANSI styling in cells.
func formatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			b.WriteString(cell)
			if i == len(row)-1 {
				b.WriteByte('\n')
				continue
			}
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
		}
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
