package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-client/internal/adapter"
	"github.com/MKhiriev/go-feed-client/internal/paging"
	"github.com/MKhiriev/go-feed-client/models"
)

// MessagesFirstPage is the cursor of the first page of the message box,
// which, unlike the article feeds, counts from one.
const MessagesFirstPage = 1

// Feeds turns the list endpoints of the adapter into [paging.Fetcher]s.
type Feeds struct {
	adapter   adapter.ServerAdapter
	firstPage int
}

// NewFeeds builds the fetchers. firstPage is the cursor of the first page
// of the article feeds.
func NewFeeds(serverAdapter adapter.ServerAdapter, firstPage int) *Feeds {
	return &Feeds{adapter: serverAdapter, firstPage: firstPage}
}

// FirstPage returns the cursor the article feeds start from.
func (f *Feeds) FirstPage() int {
	return f.firstPage
}

// Home fetches the public article feed.
func (f *Feeds) Home() paging.Fetcher[models.Article] {
	return articleFetcher("home", f.adapter.Articles, f.firstPage)
}

// Square fetches articles shared by users.
func (f *Feeds) Square() paging.Fetcher[models.Article] {
	return articleFetcher("square", f.adapter.SquareArticles, f.firstPage)
}

// Favorites fetches the articles the user collected. It needs a session.
func (f *Feeds) Favorites() paging.Fetcher[models.Article] {
	return articleFetcher("favorites", f.adapter.Favorites, f.firstPage)
}

// Messages fetches the read messages of the user. It needs a session.
func (f *Feeds) Messages() paging.Fetcher[models.Message] {
	return func(ctx context.Context, page int) (models.Page[models.Message], error) {
		bean, err := f.adapter.ReadMessages(ctx, page)
		if err != nil {
			return models.Page[models.Message]{}, fmt.Errorf("messages page %d: %w", page, err)
		}
		return bean.ToPage(MessagesFirstPage), nil
	}
}

func articleFetcher(
	name string,
	get func(ctx context.Context, page int) (models.PageBean[models.Article], error),
	firstPage int,
) paging.Fetcher[models.Article] {
	return func(ctx context.Context, page int) (models.Page[models.Article], error) {
		bean, err := get(ctx, page)
		if err != nil {
			return models.Page[models.Article]{}, fmt.Errorf("%s page %d: %w", name, page, err)
		}
		return bean.ToPage(firstPage), nil
	}
}
