package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	feedbackkit "github.com/swiftlydeveloped/feedbackkit-go"
	"github.com/swiftlydeveloped/feedbackkit-go/state"
)

var voteCmd = &cobra.Command{
	Use:   "vote <id>",
	Short: "Vote for a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE:  runVote,
}

var voteNotify bool

var unvoteCmd = &cobra.Command{
	Use:   "unvote <id>",
	Short: "Remove your vote from a feedback item",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnvote,
}

func init() {
	voteCmd.Flags().BoolVar(&voteNotify, "notify", false, "Email me when the status changes")
}

func runVote(cmd *cobra.Command, args []string) error {
	return toggleVote(args[0], false)
}

func runUnvote(cmd *cobra.Command, args []string) error {
	return toggleVote(args[0], true)
}

// toggleVote fetches the item and runs the optimistic vote flow against it.
// wantRemoval guards against toggling in the wrong direction.
func toggleVote(id string, wantRemoval bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()
	item, err := client.Feedback.Get(ctx, id)
	if err != nil {
		return err
	}

	if item.HasVoted != wantRemoval {
		if wantRemoval {
			fmt.Printf("No vote to remove from %s.\n", item.ID)
		} else {
			fmt.Printf("Already voted for %s (%d votes).\n", item.ID, item.VoteCount)
		}
		return nil
	}

	controller := state.NewVoteController(client.Votes, nil)
	controller.SetVoteOptions(feedbackkit.VoteOptions{NotifyOnStatusChange: voteNotify})

	final, err := controller.Toggle(ctx, *item)
	if err != nil {
		return err
	}

	if final.HasVoted {
		fmt.Printf("Voted for %s (%d votes).\n", final.ID, final.VoteCount)
	} else {
		fmt.Printf("Removed vote from %s (%d votes).\n", final.ID, final.VoteCount)
	}
	return nil
}
