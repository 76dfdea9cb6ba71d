package service

import (
	"bemusicshare/internal/api/config"
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/model"
	"bemusicshare/internal/pkg/es"
	"bemusicshare/internal/repository"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{}
	os.Exit(m.Run())
}

type fakePostRepo struct {
	ids  []uint64
	rows map[uint64][]*repository.FeedRow
}

func (f *fakePostRepo) CreatePost(ctx context.Context, post *model.Post, tags []string) error {
	post.ID = 1
	return nil
}

func (f *fakePostRepo) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) DeletePost(ctx context.Context, id uint64) error { return nil }

func (f *fakePostRepo) GetFeedPostIDs(ctx context.Context, query *repository.FeedQuery) ([]uint64, error) {
	start := query.Offset
	if start > len(f.ids) {
		return []uint64{}, nil
	}
	end := start + query.Limit
	if end > len(f.ids) {
		end = len(f.ids)
	}
	return f.ids[start:end], nil
}

func (f *fakePostRepo) GetFeedRows(ctx context.Context, postIDs []uint64) ([]*repository.FeedRow, error) {
	var res []*repository.FeedRow
	for _, id := range postIDs {
		res = append(res, f.rows[id]...)
	}
	return res, nil
}

func (f *fakePostRepo) GetTrendingRows(ctx context.Context, since time.Time, limit int) ([]*repository.TrendingRow, error) {
	return nil, nil
}

func (f *fakePostRepo) ResetPostCounts(ctx context.Context, id uint64, up, down, comments int64) error {
	return nil
}

func (f *fakePostRepo) GetCommentCount(ctx context.Context, id uint64) (int64, error) {
	return 0, nil
}

type fakeVoteRepo struct {
	votes map[uint64]string
}

func (f *fakeVoteRepo) CastVote(ctx context.Context, userID, postID uint64, voteType string) (model.VoteTransition, error) {
	return model.VoteTransition{}, nil
}

func (f *fakeVoteRepo) GetVote(ctx context.Context, userID, postID uint64) (*model.Vote, error) {
	return nil, nil
}

func (f *fakeVoteRepo) GetVotesByPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]string, error) {
	res := make(map[uint64]string)
	if userID == 0 {
		return res, nil
	}
	for _, id := range postIDs {
		if v, ok := f.votes[id]; ok {
			res[id] = v
		}
	}
	return res, nil
}

func (f *fakeVoteRepo) GetVoteCounts(ctx context.Context, postID uint64) (int64, int64, error) {
	return 0, 0, nil
}

type fakeSongRepo struct {
	songs map[uint64]*model.Song
}

func (f *fakeSongRepo) CreateSong(ctx context.Context, song *model.Song) error { return nil }

func (f *fakeSongRepo) GetSongById(ctx context.Context, id uint64) (*model.Song, error) {
	return f.songs[id], nil
}

func (f *fakeSongRepo) GetSongByIds(ctx context.Context, ids []uint64) ([]*model.Song, error) {
	var res []*model.Song
	for _, id := range ids {
		if s, ok := f.songs[id]; ok {
			res = append(res, s)
		}
	}
	return res, nil
}

func (f *fakeSongRepo) UpdateSongStatus(ctx context.Context, id uint64, status int8) (int64, error) {
	return 1, nil
}

func (f *fakeSongRepo) GetGenres(ctx context.Context) ([]string, error) { return nil, nil }

type fakePostESRepo struct {
	docs []*es.PostES
}

func (f *fakePostESRepo) IndexPost(ctx context.Context, post *es.PostES, version int64) error {
	return nil
}

func (f *fakePostESRepo) DeletePost(ctx context.Context, id uint64) error { return nil }

func (f *fakePostESRepo) SearchPosts(ctx context.Context, keyword, genre string, from, size int) ([]*es.PostES, error) {
	if from > len(f.docs) {
		return []*es.PostES{}, nil
	}
	end := from + size
	if end > len(f.docs) {
		end = len(f.docs)
	}
	return f.docs[from:end], nil
}

func strPtr(s string) *string { return &s }

func feedRow(postID uint64, tag *string) *repository.FeedRow {
	return &repository.FeedRow{
		PostID:         postID,
		Content:        "推荐一首",
		UpvotesCount:   int(postID * 10),
		DownvotesCount: 1,
		CommentsCount:  2,
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UserID:         100 + postID,
		Nickname:       "listener",
		SongID:         200 + postID,
		SongTitle:      "song",
		Artist:         "artist",
		Genre:          "jazz",
		Tag:            tag,
	}
}

func newFeedService(postRepo *fakePostRepo, voteRepo *fakeVoteRepo) PostService {
	return NewPostService(postRepo, &fakeSongRepo{}, voteRepo, &fakePostESRepo{})
}

func TestListFeed_GroupsTagsAndKeepsOrder(t *testing.T) {
	postRepo := &fakePostRepo{
		ids: []uint64{3, 1, 2},
		rows: map[uint64][]*repository.FeedRow{
			1: {feedRow(1, strPtr("citypop")), feedRow(1, strPtr("night"))},
			2: {feedRow(2, nil)},
			3: {feedRow(3, strPtr("jazz"))},
		},
	}
	voteRepo := &fakeVoteRepo{votes: map[uint64]string{1: "up", 3: "down"}}
	svc := newFeedService(postRepo, voteRepo)

	list, err := svc.ListFeed(context.Background(), 7, &dto.FeedQueryDTO{PageSize: 10})
	require.NoError(t, err)
	require.Len(t, list.Posts, 3)
	assert.False(t, list.HasMore)

	// 顺序与第一阶段返回的 id 顺序一致
	assert.Equal(t, uint64(3), list.Posts[0].ID)
	assert.Equal(t, uint64(1), list.Posts[1].ID)
	assert.Equal(t, uint64(2), list.Posts[2].ID)

	// 多标签合并成一条，无标签的帖子返回空数组而不是 null
	assert.Equal(t, []string{"jazz"}, list.Posts[0].Tags)
	assert.Equal(t, []string{"citypop", "night"}, list.Posts[1].Tags)
	assert.Equal(t, []string{}, list.Posts[2].Tags)

	// 访问者票型标注
	require.NotNil(t, list.Posts[0].UserVote)
	assert.Equal(t, "downvote", *list.Posts[0].UserVote)
	require.NotNil(t, list.Posts[1].UserVote)
	assert.Equal(t, "upvote", *list.Posts[1].UserVote)
	assert.Nil(t, list.Posts[2].UserVote)

	// 歌曲信息完整
	require.NotNil(t, list.Posts[1].Song)
	assert.Equal(t, "artist", list.Posts[1].Song.Artist)
}

func TestListFeed_AnonymousViewerHasNoVotes(t *testing.T) {
	postRepo := &fakePostRepo{
		ids:  []uint64{1},
		rows: map[uint64][]*repository.FeedRow{1: {feedRow(1, nil)}},
	}
	voteRepo := &fakeVoteRepo{votes: map[uint64]string{1: "up"}}
	svc := newFeedService(postRepo, voteRepo)

	list, err := svc.ListFeed(context.Background(), 0, &dto.FeedQueryDTO{})
	require.NoError(t, err)
	require.Len(t, list.Posts, 1)
	assert.Nil(t, list.Posts[0].UserVote)
}

func TestListFeed_PaginationPagesDoNotOverlap(t *testing.T) {
	ids := make([]uint64, 25)
	rows := make(map[uint64][]*repository.FeedRow, 25)
	for i := range ids {
		id := uint64(i + 1)
		ids[i] = id
		rows[id] = []*repository.FeedRow{feedRow(id, nil)}
	}
	postRepo := &fakePostRepo{ids: ids, rows: rows}
	svc := newFeedService(postRepo, &fakeVoteRepo{})

	seen := make(map[uint64]bool)
	page := 1
	for {
		list, err := svc.ListFeed(context.Background(), 0, &dto.FeedQueryDTO{Page: page, PageSize: 10})
		require.NoError(t, err)
		for _, p := range list.Posts {
			require.False(t, seen[p.ID], "post %d returned twice", p.ID)
			seen[p.ID] = true
		}
		if !list.HasMore {
			break
		}
		page++
	}

	assert.Len(t, seen, 25)
	assert.Equal(t, 3, page)
}

func TestSearchPosts_AnnotatesResults(t *testing.T) {
	postRepo := &fakePostRepo{
		ids: []uint64{1, 2},
		rows: map[uint64][]*repository.FeedRow{
			1: {feedRow(1, nil)},
			2: {feedRow(2, strPtr("rock"))},
		},
	}
	voteRepo := &fakeVoteRepo{votes: map[uint64]string{2: "up"}}
	svc := NewPostService(postRepo, &fakeSongRepo{}, voteRepo, &fakePostESRepo{
		docs: []*es.PostES{{ID: 2}, {ID: 1}},
	})

	list, err := svc.SearchPosts(context.Background(), 9, "citypop", "", 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Posts, 2)

	// 顺序跟检索结果走
	assert.Equal(t, uint64(2), list.Posts[0].ID)
	require.NotNil(t, list.Posts[0].UserVote)
	assert.Equal(t, "upvote", *list.Posts[0].UserVote)
	assert.Nil(t, list.Posts[1].UserVote)
}

func TestCreatePost_RejectsUnapprovedSong(t *testing.T) {
	songRepo := &fakeSongRepo{songs: map[uint64]*model.Song{
		5: {ID: 5, Status: 0},
	}}
	svc := NewPostService(&fakePostRepo{}, songRepo, &fakeVoteRepo{}, &fakePostESRepo{})

	_, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostDTO{SongID: 5, Content: "不错"})
	assert.ErrorIs(t, err, ErrSongNotApproved)

	_, err = svc.CreatePost(context.Background(), 1, &dto.CreatePostDTO{SongID: 6, Content: "不错"})
	assert.ErrorIs(t, err, ErrSongNotFound)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.Local)

	today := periodStart("today", now)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), today)

	// 凌晨发的与前一晚发的隔着零点
	earlyMorning := time.Date(2025, 6, 15, 0, 30, 0, 0, time.Local)
	lateNight := time.Date(2025, 6, 14, 23, 30, 0, 0, time.Local)
	assert.True(t, earlyMorning.After(today) || earlyMorning.Equal(today))
	assert.True(t, lateNight.Before(today))

	week := periodStart("week", now)
	assert.Equal(t, now.Add(-7*24*time.Hour), week)

	assert.True(t, periodStart("all", now).IsZero())
	assert.True(t, periodStart("", now).IsZero())
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, size)

	_, size = normalizePage(2, 500)
	assert.Equal(t, 50, size)
}
