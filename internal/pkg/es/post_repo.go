package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type PostRepo interface {
	IndexPost(ctx context.Context, post *PostES, version int64) error
	DeletePost(ctx context.Context, id uint64) error
	SearchPosts(ctx context.Context, keyword, genre string, from, size int) ([]*PostES, error)
}

type PostRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewPostRepo(client *elasticsearch.TypedClient) PostRepo {
	return &PostRepoImpl{client: client}
}

// IndexPost 以外部版本号写入，旧版本的乱序写入直接丢弃
func (s *PostRepoImpl) IndexPost(ctx context.Context, post *PostES, version int64) error {
	docID := strconv.FormatUint(post.ID, 10)

	_, err := s.client.Index(PostIndex).
		Id(docID).
		Document(post).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(PostIndex, docID).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

// SearchPosts 关键词检索，正文与歌名加权，标签精确加分，可按曲风过滤
func (s *PostRepoImpl) SearchPosts(ctx context.Context, keyword, genre string, from, size int) ([]*PostES, error) {
	if keyword == "" || from >= MaxSearchDepth {
		return []*PostES{}, nil
	}

	fuzziness := "AUTO"
	boolQuery := &types.BoolQuery{
		Should: []types.Query{
			{
				MultiMatch: &types.MultiMatchQuery{
					Query:  keyword,
					Fields: []string{"song_title^3", "content^2", "tags^2", "user_nickname"},
				},
			},
			{
				MultiMatch: &types.MultiMatchQuery{
					Query:     keyword,
					Fields:    []string{"song_title", "content"},
					Fuzziness: fuzziness,
				},
			},
		},
	}
	if genre != "" {
		boolQuery.Filter = []types.Query{{
			Term: map[string]types.TermQuery{
				"genre": {Value: genre},
			},
		}}
	}

	req := s.client.Search().Index(PostIndex).
		Query(&types.Query{Bool: boolQuery}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

func (s *PostRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*PostES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*PostES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var post PostES
		if hit.Source_ == nil {
			continue
		}
		if err = json.Unmarshal(hit.Source_, &post); err != nil {
			continue
		}
		if len(hit.Sort) > 0 {
			post.Sort = make([]interface{}, len(hit.Sort))
			for i, v := range hit.Sort {
				post.Sort[i] = v
			}
		}
		results = append(results, &post)
	}
	return results, nil
}
