package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubVoteRepo struct {
	fakeVoteRepo
	transition model.VoteTransition
	err        error
}

func (s *stubVoteRepo) CastVote(ctx context.Context, userID, postID uint64, voteType string) (model.VoteTransition, error) {
	return s.transition, s.err
}

type stubPostRepo struct {
	fakePostRepo
	post *model.Post
}

func (s *stubPostRepo) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	return s.post, nil
}

func TestCastVote_Created(t *testing.T) {
	voteRepo := &stubVoteRepo{transition: model.VoteTransition{Action: "created", Result: "up", UpDelta: 1}}
	postRepo := &stubPostRepo{post: &model.Post{ID: 1, UpvotesCount: 5, DownvotesCount: 2}}
	svc := NewVoteService(voteRepo, postRepo)

	res, err := svc.CastVote(context.Background(), 7, 1, &dto.VoteDTO{VoteType: "upvote"})
	require.NoError(t, err)
	assert.Equal(t, "created", res.Action)
	require.NotNil(t, res.VoteType)
	assert.Equal(t, "upvote", *res.VoteType)
	assert.Equal(t, 5, res.UpvotesCount)
	assert.Equal(t, 2, res.DownvotesCount)
}

func TestCastVote_RemovedReturnsNilVoteType(t *testing.T) {
	voteRepo := &stubVoteRepo{transition: model.VoteTransition{Action: "removed", Result: "", UpDelta: -1}}
	postRepo := &stubPostRepo{post: &model.Post{ID: 1, UpvotesCount: 4}}
	svc := NewVoteService(voteRepo, postRepo)

	res, err := svc.CastVote(context.Background(), 7, 1, &dto.VoteDTO{VoteType: "upvote"})
	require.NoError(t, err)
	assert.Equal(t, "removed", res.Action)
	assert.Nil(t, res.VoteType)
}

func TestCastVote_ChangedMapsToAPIType(t *testing.T) {
	voteRepo := &stubVoteRepo{transition: model.VoteTransition{Action: "changed", Result: "down", UpDelta: -1, DownDelta: 1}}
	postRepo := &stubPostRepo{post: &model.Post{ID: 1, DownvotesCount: 3}}
	svc := NewVoteService(voteRepo, postRepo)

	res, err := svc.CastVote(context.Background(), 7, 1, &dto.VoteDTO{VoteType: "downvote"})
	require.NoError(t, err)
	assert.Equal(t, "changed", res.Action)
	require.NotNil(t, res.VoteType)
	assert.Equal(t, "downvote", *res.VoteType)
}

func TestCastVote_InvalidType(t *testing.T) {
	svc := NewVoteService(&stubVoteRepo{}, &stubPostRepo{})

	_, err := svc.CastVote(context.Background(), 7, 1, &dto.VoteDTO{VoteType: "like"})
	assert.ErrorIs(t, err, ErrVoteTypeInvalid)
}

func TestCastVote_MissingPost(t *testing.T) {
	voteRepo := &stubVoteRepo{err: gorm.ErrRecordNotFound}
	svc := NewVoteService(voteRepo, &stubPostRepo{})

	_, err := svc.CastVote(context.Background(), 7, 99, &dto.VoteDTO{VoteType: "upvote"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}
