// services/feed_service.go - social feed construction pipeline
package services

import (
	"fmt"
	"time"

	"github.com/fabriciolopss/TI1-webserver/feed"
	"github.com/fabriciolopss/TI1-webserver/models"
	"github.com/fabriciolopss/TI1-webserver/observability"
	"github.com/fabriciolopss/TI1-webserver/store"
)

// FeedService runs the full join-filter-sort-paginate-assemble
// sequence. It is stateless between requests: every call re-reads the
// user snapshot from the store, and nothing is cached or mutated.
type FeedService struct {
	store     store.UserStore
	assembler *feed.Assembler
}

func NewFeedService(s store.UserStore) *FeedService {
	return &FeedService{
		store:     s,
		assembler: feed.NewAssembler(feed.NewCaptionGenerator()),
	}
}

// FeedPage is the response body of the social feed endpoint.
type FeedPage struct {
	Posts   []feed.Post `json:"posts"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	HasMore bool        `json:"hasMore"`
}

// BuildFeed produces one page of the social feed. Unknown sortBy or
// category values fall back silently; only a store read failure is an
// error, and it propagates to the caller as a request failure.
func (s *FeedService) BuildFeed(category, sortBy string, page, limit int) (*FeedPage, error) {
	start := time.Now()

	users, err := s.store.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	items := feed.Join(users)
	observability.RecordUnjoinableEvents(countEvents(users) - len(items))

	result := feed.Query(items, category, feed.ParseSortMode(sortBy), page, limit)
	posts := s.assembler.Assemble(result.Items)

	observability.RecordFeedBuild(len(posts), time.Since(start))

	return &FeedPage{
		Posts:   posts,
		Total:   result.Total,
		Page:    result.Page,
		Limit:   result.Limit,
		HasMore: result.HasMore,
	}, nil
}

func countEvents(users []models.User) int {
	n := 0
	for i := range users {
		n += len(users[i].UserData.RegisteredTrainings)
	}
	return n
}
