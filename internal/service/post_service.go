package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/model"
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/es"
	"bemusicshare/internal/pkg/minio"
	"bemusicshare/internal/pkg/redis"
	"bemusicshare/internal/pkg/util"
	"bemusicshare/internal/repository"
	"context"
	"time"
)

const (
	DefaultPageSize = 20
	TrendingDepth   = 100
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error
	ListFeed(ctx context.Context, viewerID uint64, query *dto.FeedQueryDTO) (*dto.PostListDTO, error)
	SearchPosts(ctx context.Context, viewerID uint64, keyword, genre string, page, pageSize int) (*dto.PostListDTO, error)
}

type PostServiceImpl struct {
	postRepo   repository.PostRepo
	songRepo   repository.SongRepo
	voteRepo   repository.VoteRepo
	postESRepo es.PostRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	songRepo repository.SongRepo,
	voteRepo repository.VoteRepo,
	postESRepo es.PostRepo,
) PostService {
	return &PostServiceImpl{
		postRepo:   postRepo,
		songRepo:   songRepo,
		voteRepo:   voteRepo,
		postESRepo: postESRepo,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO) (*dto.PostDTO, error) {
	song, err := s.songRepo.GetSongById(ctx, createDTO.SongID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, ErrSongNotFound
	}
	if song.Status != consts.SongStatusApproved {
		return nil, ErrSongNotApproved
	}

	post := &model.Post{
		UserID:  userID,
		SongID:  createDTO.SongID,
		Content: createDTO.Content,
	}
	tags := util.ExtractTags(createDTO.Content)

	if err = s.postRepo.CreatePost(ctx, post, tags); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, userID, post.ID)
}

func (s *PostServiceImpl) GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error) {
	list, err := s.assemble(ctx, viewerID, []uint64{postID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrPostNotFound
	}
	return list[0], nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID && !isAdmin {
		return UnauthorizedError
	}

	return s.postRepo.DeletePost(ctx, postID)
}

// ListFeed 信息流两段式装配：先按条件翻出一页帖子 id，
// 再对这页 id 做一次扁平连接并按 id 分组
func (s *PostServiceImpl) ListFeed(ctx context.Context, viewerID uint64, query *dto.FeedQueryDTO) (*dto.PostListDTO, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)
	offset := (page - 1) * pageSize

	var ids []uint64
	var hasMore bool
	var err error

	if query.Sort == consts.SortTrending && query.AuthorID == 0 && query.Genre == "" && query.Period == "" {
		ids, hasMore, err = s.trendingPage(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
	}

	if ids == nil {
		feedQuery := &repository.FeedQuery{
			AuthorID: query.AuthorID,
			Genre:    query.Genre,
			Since:    periodStart(query.Period, time.Now()),
			Sort:     sortForQuery(query.Sort),
			Limit:    pageSize + 1,
			Offset:   offset,
		}
		ids, err = s.postRepo.GetFeedPostIDs(ctx, feedQuery)
		if err != nil {
			return nil, err
		}
		if len(ids) > pageSize {
			hasMore = true
			ids = ids[:pageSize]
		}
	}

	posts, err := s.assemble(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	return &dto.PostListDTO{Posts: posts, HasMore: hasMore}, nil
}

// SearchPosts 关键词检索走 ES，结果同样带上访问者票型
func (s *PostServiceImpl) SearchPosts(ctx context.Context, viewerID uint64, keyword, genre string, page, pageSize int) (*dto.PostListDTO, error) {
	page, pageSize = normalizePage(page, pageSize)
	from := (page - 1) * pageSize

	docs, err := s.postESRepo.SearchPosts(ctx, keyword, genre, from, pageSize+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(docs) > pageSize {
		hasMore = true
		docs = docs[:pageSize]
	}

	ids := make([]uint64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	posts, err := s.assemble(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	return &dto.PostListDTO{Posts: posts, HasMore: hasMore}, nil
}

// assemble 把一页帖子 id 拼装成完整的信息流条目，顺序与入参一致
func (s *PostServiceImpl) assemble(ctx context.Context, viewerID uint64, ids []uint64) ([]*dto.PostDTO, error) {
	if len(ids) == 0 {
		return []*dto.PostDTO{}, nil
	}

	rows, err := s.postRepo.GetFeedRows(ctx, ids)
	if err != nil {
		return nil, err
	}

	viewerVotes, err := s.voteRepo.GetVotesByPostIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint64]*dto.PostDTO, len(ids))
	for _, row := range rows {
		item, ok := grouped[row.PostID]
		if !ok {
			item = &dto.PostDTO{
				ID:             row.PostID,
				Content:        row.Content,
				Tags:           []string{},
				UpvotesCount:   row.UpvotesCount,
				DownvotesCount: row.DownvotesCount,
				CommentsCount:  row.CommentsCount,
				CreatedAt:      row.CreatedAt,
				UserVote:       apiVoteType(viewerVotes[row.PostID]),
				UserID:         row.UserID,
				Nickname:       row.Nickname,
				AvatarURL:      minio.GetPublicURL(row.AvatarURL),
				Song: &dto.SongDTO{
					ID:       row.SongID,
					ArtistID: row.SongArtistID,
					Title:    row.SongTitle,
					Artist:   row.Artist,
					Genre:    row.Genre,
					Duration: row.Duration,
					MediaURL: minio.GetPublicURL(row.MediaURL),
					CoverURL: minio.GetPublicURL(row.CoverURL),
				},
			}
			grouped[row.PostID] = item
		}
		if row.Tag != nil {
			item.Tags = append(item.Tags, *row.Tag)
		}
	}

	posts := make([]*dto.PostDTO, 0, len(ids))
	for _, id := range ids {
		if item, ok := grouped[id]; ok {
			posts = append(posts, item)
		}
	}
	return posts, nil
}

// trendingPage 热榜页直接读预计算的 ZSET
func (s *PostServiceImpl) trendingPage(ctx context.Context, pageSize, offset int) ([]uint64, bool, error) {
	if offset >= TrendingDepth {
		return []uint64{}, false, nil
	}

	members, err := redis.ZRevRange(ctx, consts.TrendingPostsKey, int64(offset), int64(offset+pageSize))
	if err != nil {
		return nil, false, err
	}

	hasMore := false
	if len(members) > pageSize {
		hasMore = true
		members = members[:pageSize]
	}

	ids, err := util.StrSliceToUInt64Slice(members)
	if err != nil {
		return nil, false, err
	}
	return ids, hasMore, nil
}

// periodStart 时间窗起点，today 取本地当日零点
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case consts.PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case consts.PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case consts.PeriodMonth:
		return now.Add(-30 * 24 * time.Hour)
	default:
		return time.Time{}
	}
}

func sortForQuery(sort string) string {
	// 热榜条件带了筛选时退化为按票数排序
	if sort == consts.SortTrending {
		return consts.SortTop
	}
	return sort
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > 50 {
		pageSize = 50
	}
	return page, pageSize
}

// apiVoteType 数据库票型转接口票型，空值返回 nil
func apiVoteType(voteType string) *string {
	switch voteType {
	case consts.VoteUp:
		return util.PtrStr(consts.VoteAPIUp)
	case consts.VoteDown:
		return util.PtrStr(consts.VoteAPIDown)
	default:
		return nil
	}
}
