// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
	"github.com/MKhiriev/go-feed-client/models"
)

// TokenIssuer is the "iss" claim of every issued token.
const TokenIssuer = "feed-stub"

// Home feed, square and favourites are 0-based; the message box is 1-based.
const (
	feedFirstPage    = 0
	messageFirstPage = 1
)

type account struct {
	profile   models.LoginResult
	password  string
	coins     int
	favorites []int64
	messages  []models.Message
}

// Backend holds the content and sessions of the stub server. It is safe for
// concurrent use.
type Backend struct {
	mu sync.RWMutex

	signKey  string
	ttl      time.Duration
	pageSize int

	accounts map[string]*account
	byID     map[int64]*account
	articles []models.Article
	square   []models.Article

	// sessions maps the "jti" of every live token to its user.
	sessions map[string]int64
	logins   int

	clock  clockwork.Clock
	logger *logger.Logger
}

// New seeds a Backend with the configured accounts.
func New(cfg *config.ServerConfig, clock clockwork.Clock, log *logger.Logger) *Backend {
	now := clock.Now()
	b := &Backend{
		signKey:  cfg.TokenSignKey,
		ttl:      cfg.TokenTTL,
		pageSize: cfg.PageSize,
		accounts: make(map[string]*account, len(cfg.Accounts)),
		byID:     make(map[int64]*account, len(cfg.Accounts)),
		articles: seedArticles(1, seedHomeArticles, now, false),
		square:   seedArticles(10001, seedSquareArticles, now, true),
		sessions: make(map[string]int64),
		clock:    clock,
		logger:   log,
	}

	for i, acc := range cfg.Accounts {
		id := int64(i + 1)
		profile := models.LoginResult{
			ID:         id,
			Username:   acc.Username,
			Nickname:   acc.Username,
			PublicName: acc.Username,
			Email:      acc.Username + "@feed.example",
		}

		a := &account{
			profile:  profile,
			password: acc.Password,
			coins:    100 + 10*i,
			messages: seedMessageBox(profile, now),
		}
		for j := 0; j < seedFavorites && j < len(b.articles); j++ {
			a.favorites = append(a.favorites, b.articles[j].ID)
		}

		b.accounts[acc.Username] = a
		b.byID[id] = a
	}

	log.Info().
		Int("accounts", len(b.accounts)).
		Int("articles", len(b.articles)).
		Msg("stub backend seeded")

	return b
}

// Login checks the password and opens a new session.
func (b *Backend) Login(username, password string) (models.LoginResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.accounts[username]
	if !ok || acc.password != password {
		return models.LoginResult{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(TokenIssuer, acc.profile.ID, b.clock.Now(), b.ttl, b.signKey)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("error issuing token: %w", err)
	}

	b.sessions[token.ID] = acc.profile.ID
	b.logins++

	result := b.profileLocked(acc)
	result.Token = token.String()

	b.logger.Info().
		Int64("user_id", acc.profile.ID).
		Str("jti", token.ID).
		Msg("session opened")

	return result, nil
}

// Authenticate returns the user a token belongs to. Any token that is
// malformed, expired, logged out or dropped by [Backend.ExpireSessions]
// gives [ErrNeedLogin].
func (b *Backend) Authenticate(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, ErrNeedLogin
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, b.signKey, TokenIssuer, b.clock.Now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNeedLogin, err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	userID, ok := b.sessions[token.ID]
	if !ok || userID != token.UserID {
		return 0, ErrNeedLogin
	}
	return userID, nil
}

// Logout closes the session of tokenString. Logging out without a valid
// session succeeds.
func (b *Backend) Logout(tokenString string) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, b.signKey, TokenIssuer, b.clock.Now)
	if err != nil {
		return
	}

	b.mu.Lock()
	delete(b.sessions, token.ID)
	b.mu.Unlock()
}

// ExpireSessions drops every live session and returns how many there were.
func (b *Backend) ExpireSessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.sessions)
	clear(b.sessions)

	b.logger.Info().Int("sessions", n).Msg("sessions expired")
	return n
}

// LoginCount reports how many successful logins were served.
func (b *Backend) LoginCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.logins
}

// UserInfo returns the full profile of userID.
func (b *Backend) UserInfo(userID int64) (models.UserInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acc, ok := b.byID[userID]
	if !ok {
		return models.UserInfo{}, ErrNeedLogin
	}

	profile := b.profileLocked(acc)
	return models.UserInfo{
		User: profile,
		Coin: models.CoinInfo{
			CoinCount: acc.coins,
			Level:     acc.coins/100 + 1,
			Nickname:  profile.Nickname,
			Rank:      strconv.FormatInt(userID, 10),
			UserID:    userID,
			Username:  profile.Username,
		},
		CollectArticleInfo: models.CollectArticleInfo{Count: len(acc.favorites)},
	}, nil
}

// Articles returns a page of the home feed. userID marks the reader's
// favourites and is 0 for a guest.
func (b *Backend) Articles(page int, userID int64) (models.PageBean[models.Article], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.articlePageLocked(b.articles, page, userID)
}

// Square returns a page of the shared articles.
func (b *Backend) Square(page int, userID int64) (models.PageBean[models.Article], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.articlePageLocked(b.square, page, userID)
}

// Favorites returns a page of the articles userID collected, most recent
// first.
func (b *Backend) Favorites(userID int64, page int) (models.PageBean[models.Article], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acc, ok := b.byID[userID]
	if !ok {
		return models.PageBean[models.Article]{}, ErrNeedLogin
	}

	collected := make([]models.Article, 0, len(acc.favorites))
	for _, id := range acc.favorites {
		if a, ok := b.findLocked(id); ok {
			a.Collect = true
			collected = append(collected, a)
		}
	}
	return pageOf(collected, page, feedFirstPage, b.pageSize)
}

// ReadMessages returns a page of the read messages of userID. Pages start
// at 1.
func (b *Backend) ReadMessages(userID int64, page int) (models.PageBean[models.Message], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acc, ok := b.byID[userID]
	if !ok {
		return models.PageBean[models.Message]{}, ErrNeedLogin
	}
	return pageOf(acc.messages, page, messageFirstPage, b.pageSize)
}

// Collect adds articleID to the favourites of userID. Collecting twice is a
// no-op.
func (b *Backend) Collect(userID, articleID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.byID[userID]
	if !ok {
		return ErrNeedLogin
	}
	if _, ok := b.findLocked(articleID); !ok {
		return ErrArticleNotFound
	}
	if !slices.Contains(acc.favorites, articleID) {
		acc.favorites = slices.Insert(acc.favorites, 0, articleID)
	}
	return nil
}

// Uncollect removes articleID from the favourites of userID.
func (b *Backend) Uncollect(userID, articleID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.byID[userID]
	if !ok {
		return ErrNeedLogin
	}
	acc.favorites = slices.DeleteFunc(acc.favorites, func(id int64) bool { return id == articleID })
	return nil
}

func (b *Backend) profileLocked(acc *account) models.LoginResult {
	profile := acc.profile
	profile.CoinCount = acc.coins
	profile.CollectIDs = slices.Clone(acc.favorites)
	return profile
}

func (b *Backend) findLocked(id int64) (models.Article, bool) {
	for _, list := range [][]models.Article{b.articles, b.square} {
		if i := slices.IndexFunc(list, func(a models.Article) bool { return a.ID == id }); i >= 0 {
			return list[i], true
		}
	}
	return models.Article{}, false
}

func (b *Backend) articlePageLocked(list []models.Article, page int, userID int64) (models.PageBean[models.Article], error) {
	bean, err := pageOf(list, page, feedFirstPage, b.pageSize)
	if err != nil {
		return bean, err
	}
	if acc, ok := b.byID[userID]; ok {
		for i := range bean.Datas {
			bean.Datas[i].Collect = slices.Contains(acc.favorites, bean.Datas[i].ID)
		}
	}
	return bean, nil
}

// pageOf cuts page out of items. CurPage in the result is always 1-based,
// whatever firstPage the endpoint counts from.
func pageOf[T any](items []T, page, firstPage, size int) (models.PageBean[T], error) {
	index := page - firstPage
	if index < 0 || size <= 0 {
		return models.PageBean[T]{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	total := len(items)
	pageCount := (total + size - 1) / size
	offset := index * size

	datas := []T{}
	if offset < total {
		datas = slices.Clone(items[offset:min(offset+size, total)])
	}

	return models.PageBean[T]{
		CurPage:   index + 1,
		Datas:     datas,
		Offset:    offset,
		Over:      index+1 >= pageCount,
		PageCount: pageCount,
		Size:      size,
		Total:     total,
	}, nil
}
