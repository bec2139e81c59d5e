package models

// VoteResponse is the authoritative post-vote state returned by the server.
// It always supersedes any client-side optimistic guess.
type VoteResponse struct {
	Success   bool `json:"success"`
	VoteCount int  `json:"vote_count"`
	HasVoted  bool `json:"has_voted"`
}
