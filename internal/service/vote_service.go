package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type VoteService interface {
	CastVote(ctx context.Context, userID, postID uint64, voteDTO *dto.VoteDTO) (*dto.VoteResultDTO, error)
}

type VoteServiceImpl struct {
	voteRepo repository.VoteRepo
	postRepo repository.PostRepo
}

func NewVoteService(voteRepo repository.VoteRepo, postRepo repository.PostRepo) VoteService {
	return &VoteServiceImpl{
		voteRepo: voteRepo,
		postRepo: postRepo,
	}
}

// CastVote 投票入口，重复投同票型等于撤票，投另一票型等于改票
func (s *VoteServiceImpl) CastVote(ctx context.Context, userID, postID uint64, voteDTO *dto.VoteDTO) (*dto.VoteResultDTO, error) {
	voteType, err := dbVoteType(voteDTO.VoteType)
	if err != nil {
		return nil, err
	}

	transition, err := s.voteRepo.CastVote(ctx, userID, postID, voteType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	result := &dto.VoteResultDTO{
		Action:         transition.Action,
		UpvotesCount:   post.UpvotesCount,
		DownvotesCount: post.DownvotesCount,
	}
	if transition.Result != "" {
		result.VoteType = apiVoteType(transition.Result)
	}
	return result, nil
}

func dbVoteType(apiType string) (string, error) {
	switch apiType {
	case consts.VoteAPIUp:
		return consts.VoteUp, nil
	case consts.VoteAPIDown:
		return consts.VoteDown, nil
	default:
		return "", ErrVoteTypeInvalid
	}
}

