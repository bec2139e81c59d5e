package state

import (
	"context"

	feedbackkit "github.com/swiftlydeveloped/feedbackkit-go"
	"github.com/swiftlydeveloped/feedbackkit-go/apierror"
	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

// VoteSnapshot records the pre-trigger vote state so a failed optimistic
// update can be rolled back exactly.
type VoteSnapshot struct {
	HasVoted  bool
	VoteCount int
}

// OptimisticToggle flips the vote flag and adjusts the count by one,
// returning the tentative item and the recorded pre-state.
func OptimisticToggle(f models.Feedback) (models.Feedback, VoteSnapshot) {
	prev := VoteSnapshot{HasVoted: f.HasVoted, VoteCount: f.VoteCount}
	if f.HasVoted {
		return f.WithVote(false, f.VoteCount-1), prev
	}
	return f.WithVote(true, f.VoteCount+1), prev
}

// Restore returns the item with the recorded pre-state reapplied.
func (s VoteSnapshot) Restore(f models.Feedback) models.Feedback {
	return f.WithVote(s.HasVoted, s.VoteCount)
}

// ApplyVoteResponse replaces the item's vote state with the server's
// authoritative answer, which supersedes any optimistic guess.
func ApplyVoteResponse(f models.Feedback, resp models.VoteResponse) models.Feedback {
	return f.WithVote(resp.HasVoted, resp.VoteCount)
}

// Voter is the slice of the votes API the controller depends on.
// *feedbackkit.VotesAPI satisfies it.
type Voter interface {
	ToggleVote(ctx context.Context, feedbackID string, hasVoted bool, opts feedbackkit.VoteOptions) (*models.VoteResponse, error)
}

// VoteController runs the two-phase optimistic vote flow: apply the
// tentative delta, call the API, then either commit the server state or
// restore the recorded pre-state. Failures are returned to the caller
// after the rollback.
type VoteController struct {
	votes Voter
	list  *ListState
	opts  feedbackkit.VoteOptions
}

// NewVoteController creates a controller. list may be nil when the caller
// manages its own item state.
func NewVoteController(votes Voter, list *ListState) *VoteController {
	return &VoteController{votes: votes, list: list}
}

// SetVoteOptions sets the flags sent with every vote.
func (c *VoteController) SetVoteOptions(opts feedbackkit.VoteOptions) {
	c.opts = opts
}

// Toggle flips the vote on the given item. It returns the item's final
// state: the server's authoritative state on success, the restored
// pre-trigger state alongside the classified error on failure.
func (c *VoteController) Toggle(ctx context.Context, item models.Feedback) (models.Feedback, error) {
	if !item.CanVote() {
		return item, apierror.NewValidation("Voting is closed for this feedback")
	}

	tentative, prev := OptimisticToggle(item)
	if c.list != nil {
		c.list.UpdateFeedback(tentative)
	}

	resp, err := c.votes.ToggleVote(ctx, item.ID, prev.HasVoted, c.opts)
	if err != nil {
		reverted := prev.Restore(tentative)
		if c.list != nil {
			c.list.UpdateFeedback(reverted)
		}
		return reverted, apierror.FromError(err)
	}

	final := ApplyVoteResponse(tentative, *resp)
	if c.list != nil {
		c.list.UpdateFeedback(final)
	}
	return final, nil
}
