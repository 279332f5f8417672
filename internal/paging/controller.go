// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paging implements the page-number pagination runtime shared by
// every list of the client.
//
// A [Controller] owns the list state of one screen. Refresh and LoadMore may
// be called from any goroutine; the state itself is mutated and published
// only on the main loop, while page fetches run on their own goroutines.
package paging

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/observable"
	"github.com/MKhiriev/go-feed-client/internal/workers"
	"github.com/MKhiriev/go-feed-client/models"
)

// Fetcher loads one page. page is the cursor: the first page on refresh,
// then the NextPage of the previous result.
type Fetcher[T any] func(ctx context.Context, page int) (models.Page[T], error)

// Controller is the incremental pagination state machine of one list.
//
// At most one fetch is outstanding. Items are appended on LoadMore and
// replaced on Refresh; no deduplication is done, so a page that is retried
// after a failure may repeat items already shown.
type Controller[T any] struct {
	loop      *workers.MainLoop
	fetch     Fetcher[T]
	firstPage int
	logger    *logger.Logger

	Items       *observable.Value[[]T]
	Loading     *observable.Value[bool]
	LoadingMore *observable.Value[bool]
	HasMore     *observable.Value[bool]
	Empty       *observable.Value[bool]
	Err         *observable.Value[error]

	// Confined to the main loop.
	items       []T
	nextPage    int
	inFlight    bool
	generation  uint64
	initialized bool
	cancelFetch context.CancelFunc
	closed      bool

	ctx    context.Context
	cancel context.CancelFunc
}

// New builds an idle controller. Nothing is fetched until Refresh.
func New[T any](loop *workers.MainLoop, firstPage int, fetch Fetcher[T], log *logger.Logger) *Controller[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller[T]{
		loop:      loop,
		fetch:     fetch,
		firstPage: firstPage,
		logger:    log,

		Items:       observable.NewValue([]T{}),
		Loading:     observable.NewValue(false),
		LoadingMore: observable.NewValue(false),
		HasMore:     observable.NewValue(true),
		Empty:       observable.NewValue(false),
		Err:         observable.NewValue[error](nil),

		nextPage: firstPage,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Refresh restarts the list from the first page. A fetch already in flight
// is cancelled and its result dropped.
func (c *Controller[T]) Refresh() {
	c.loop.Post(func() {
		if c.closed {
			return
		}

		c.abortFetch()
		c.nextPage = c.firstPage
		c.HasMore.Set(true)
		c.LoadingMore.Set(false)
		c.Loading.Set(true)
		c.start(true)
	})
}

// LoadMore fetches the next page. It does nothing when the last page has
// been reached or a fetch is already in flight.
func (c *Controller[T]) LoadMore() {
	c.loop.Post(func() {
		if c.closed || c.inFlight || !c.HasMore.Get() {
			return
		}

		c.LoadingMore.Set(true)
		c.start(false)
	})
}

// Initialized reports whether a fetch was ever started. It must be called on
// the main loop.
func (c *Controller[T]) Initialized() bool {
	return c.initialized
}

// Close tears the controller down. The fetch in flight is cancelled and
// later results are dropped.
func (c *Controller[T]) Close() {
	c.cancel()
	c.loop.Post(func() {
		c.closed = true
		c.abortFetch()
	})
}

func (c *Controller[T]) start(refresh bool) {
	c.initialized = true
	c.inFlight = true
	c.generation++
	gen := c.generation
	page := c.nextPage

	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelFetch = cancel

	go func() {
		result, err := c.fetch(ctx, page)
		c.loop.Post(func() {
			c.complete(gen, refresh, page, result, err)
		})
	}()
}

func (c *Controller[T]) complete(gen uint64, refresh bool, page int, result models.Page[T], err error) {
	if c.closed || gen != c.generation {
		return
	}

	c.inFlight = false
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
	c.Loading.Set(false)
	c.LoadingMore.Set(false)

	if err != nil {
		c.logger.Debug().Err(err).
			Str("func", "Controller.complete").
			Int("page", page).
			Msg("page fetch failed")

		if refresh && len(c.items) == 0 {
			c.Empty.Set(true)
		}
		c.Err.Set(err)
		return
	}

	if refresh {
		c.items = slices.Clone(result.Items)
	} else {
		c.items = append(slices.Clone(c.items), result.Items...)
	}
	if c.items == nil {
		c.items = []T{}
	}

	c.nextPage = result.NextPage
	c.Items.Set(c.items)
	c.HasMore.Set(result.HasMore)
	c.Empty.Set(len(c.items) == 0)
}

// abortFetch cancels the fetch in flight, if any. Bumping the generation
// makes its result stale.
func (c *Controller[T]) abortFetch() {
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
	if c.inFlight {
		c.generation++
		c.inFlight = false
	}
}
