package dto

type VoteDTO struct {
	VoteType string `json:"vote_type" validate:"required,oneof=upvote downvote"`
}

// VoteResultDTO 投票结果，VoteType 在撤票时为 null
type VoteResultDTO struct {
	Action         string  `json:"action"`
	VoteType       *string `json:"vote_type"`
	UpvotesCount   int     `json:"upvotes_count"`
	DownvotesCount int     `json:"downvotes_count"`
}
