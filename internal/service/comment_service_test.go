package service

import (
	"bemusicshare/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	deleted  []uint64
}

func (f *fakeCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.ID = uint64(len(f.comments) + 1)
	return nil
}

func (f *fakeCommentRepo) DeleteComment(ctx context.Context, id, postID uint64) (bool, error) {
	c, ok := f.comments[id]
	if !ok || c.PostID != postID {
		return false, nil
	}
	delete(f.comments, id)
	f.deleted = append(f.deleted, id)
	return true, nil
}

func (f *fakeCommentRepo) GetCommentById(ctx context.Context, id uint64) (*model.Comment, error) {
	return f.comments[id], nil
}

func (f *fakeCommentRepo) GetCommentsByPostId(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	var all []*model.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			all = append(all, c)
		}
	}
	if offset > len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func newCommentFixture(postOwner uint64) (*fakeCommentRepo, CommentService) {
	commentRepo := &fakeCommentRepo{comments: map[uint64]*model.Comment{
		10: {ID: 10, PostID: 1, UserID: 100, Content: "同感"},
	}}
	postRepo := &stubPostRepo{post: &model.Post{ID: 1, UserID: postOwner}}
	return commentRepo, NewCommentService(commentRepo, postRepo, nil)
}

func TestDeleteComment_Author(t *testing.T) {
	repo, svc := newCommentFixture(200)

	err := svc.DeleteComment(context.Background(), 100, false, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{10}, repo.deleted)
}

func TestDeleteComment_PostOwner(t *testing.T) {
	_, svc := newCommentFixture(200)

	err := svc.DeleteComment(context.Background(), 200, false, 1, 10)
	assert.NoError(t, err)
}

func TestDeleteComment_Admin(t *testing.T) {
	_, svc := newCommentFixture(200)

	err := svc.DeleteComment(context.Background(), 999, true, 1, 10)
	assert.NoError(t, err)
}

func TestDeleteComment_Stranger(t *testing.T) {
	repo, svc := newCommentFixture(200)

	err := svc.DeleteComment(context.Background(), 300, false, 1, 10)
	assert.ErrorIs(t, err, UnauthorizedError)
	assert.Empty(t, repo.deleted)
}

func TestDeleteComment_WrongPost(t *testing.T) {
	_, svc := newCommentFixture(200)

	// 评论存在但不属于这条帖子
	err := svc.DeleteComment(context.Background(), 100, false, 2, 10)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestListComments_Waterfall(t *testing.T) {
	commentRepo := &fakeCommentRepo{comments: map[uint64]*model.Comment{}}
	for i := uint64(1); i <= 5; i++ {
		commentRepo.comments[i] = &model.Comment{ID: i, PostID: 1, Content: "好听"}
	}
	postRepo := &stubPostRepo{post: &model.Post{ID: 1}}
	svc := NewCommentService(commentRepo, postRepo, nil)

	list, err := svc.ListComments(context.Background(), 1, 1, 3)
	require.NoError(t, err)
	assert.Len(t, list.Comments, 3)
	assert.True(t, list.HasMore)

	list, err = svc.ListComments(context.Background(), 1, 2, 3)
	require.NoError(t, err)
	assert.Len(t, list.Comments, 2)
	assert.False(t, list.HasMore)
}

func TestListComments_MissingPost(t *testing.T) {
	svc := NewCommentService(&fakeCommentRepo{}, &stubPostRepo{}, nil)

	_, err := svc.ListComments(context.Background(), 404, 1, 20)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
