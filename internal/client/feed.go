package client

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/paging"
	"github.com/MKhiriev/go-feed-client/internal/workers"
)

// walkFeed pages through fetch with a paging controller, calling onPage with
// the items of every page as it lands. maxPages of zero walks until the
// server reports the last page.
func walkFeed[T any](
	ctx context.Context,
	loop *workers.MainLoop,
	firstPage int,
	fetch paging.Fetcher[T],
	maxPages int,
	onPage func(page int, items []T),
	log *logger.Logger,
) (int, error) {
	c := paging.New(loop, firstPage, fetch, log)
	defer c.Close()

	// a landed page ends in either Items or Err being set
	landed := make(chan error, 1)
	signal := func(err error) {
		select {
		case landed <- err:
		default:
		}
	}

	var armed atomic.Bool
	stopItems := c.Items.Observe(func([]T) {
		if armed.Load() {
			signal(nil)
		}
	})
	defer stopItems()
	stopErr := c.Err.Observe(func(err error) {
		if armed.Load() && err != nil {
			signal(err)
		}
	})
	defer stopErr()
	armed.Store(true)

	seen := 0
	for page := 0; maxPages == 0 || page < maxPages; page++ {
		if page == 0 {
			c.Refresh()
		} else {
			c.LoadMore()
		}

		select {
		case err := <-landed:
			if err != nil {
				return page, err
			}
		case <-ctx.Done():
			return page, ctx.Err()
		}

		// complete() has finished once this runs
		var items []T
		var hasMore bool
		if err := loop.Sync(ctx, func() {
			items = c.Items.Get()
			hasMore = c.HasMore.Get()
		}); err != nil {
			return page, err
		}

		onPage(page, items[seen:])
		seen = len(items)

		if !hasMore {
			return page + 1, nil
		}
	}
	return maxPages, nil
}
