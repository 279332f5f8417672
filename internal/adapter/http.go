package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
	"github.com/MKhiriev/go-feed-client/models"
)

// RequestIDHeader carries the outbound request id.
const RequestIDHeader = "X-Request-ID"

// sessionCookieName is the cookie some deployments use instead of a token.
const sessionCookieName = "token_pass"

// Options carries the collaborators plugged into the HTTP client. Every
// field is optional.
type Options struct {
	// Tokens supplies the bearer token attached to each request.
	Tokens TokenSource
	// Jar stores and replays server cookies.
	Jar http.CookieJar
	// Transport replaces the default round tripper, typically with a
	// [RefreshTransport].
	Transport http.RoundTripper
}

type httpServerAdapter struct {
	client       *utils.HTTPClient
	tokens       TokenSource
	ids          *utils.UUIDGenerator
	unauthorized map[int]struct{}

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates cfg.BaseURL, applies the request timeout to
// every call and installs the hooks that attach the bearer token and a
// request id.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, opts Options, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	h := &httpServerAdapter{
		client:       utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens:       opts.Tokens,
		ids:          utils.NewUUIDGenerator(),
		unauthorized: codeSet(cfg.UnauthorizedCodes),
		logger:       log,
	}

	h.client.
		SetLogger(logger.NewPrintf(log)).
		SetCookieJar(opts.Jar).
		OnBeforeRequest(h.prepareRequest)

	if opts.Transport != nil {
		h.client.SetTransport(opts.Transport)
	}

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// prepareRequest attaches the request id and, outside the login path, the
// current bearer token.
func (h *httpServerAdapter) prepareRequest(_ *resty.Client, r *resty.Request) error {
	id, ok := utils.GetRequestIDFromContext(r.Context())
	if !ok {
		id = h.ids.Generate()
	}
	r.SetHeader(RequestIDHeader, id)

	if h.tokens == nil || refreshDisabled(r.Context()) || r.Header.Get("Authorization") != "" {
		return nil
	}
	if token := h.tokens.PeekToken(); token != "" {
		r.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return nil
}

// Login implements [ServerAdapter]. It POSTs the form to /user/login.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(WithoutRefresh(ctx)).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/user/login")
	if err != nil {
		return models.LoginResult{}, transportError("login", err)
	}

	result, err := decodeEnvelope[models.LoginResult](resp, h.unauthorized)
	if err != nil {
		return models.LoginResult{}, err
	}

	if result.Token == "" {
		result.Token = tokenFromResponse(resp)
	}
	if result.Token == "" {
		return models.LoginResult{}, ErrMissingToken
	}
	if result.ID == 0 {
		result.ID = userIDFromToken(result.Token)
	}
	if result.Username == "" {
		result.Username = username
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.Login").
		Int64("user_id", result.ID).
		Msg("logged in")

	return result, nil
}

// Logout implements [ServerAdapter]. It GETs /user/logout/json.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/user/logout/json")
	if err != nil {
		return transportError("logout", err)
	}

	_, err = decodeEnvelope[any](resp, h.unauthorized)
	return err
}

// UserInfo implements [ServerAdapter]. It GETs /user/lg/userinfo/json.
func (h *httpServerAdapter) UserInfo(ctx context.Context) (models.UserInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/user/lg/userinfo/json")
	if err != nil {
		return models.UserInfo{}, transportError("user info", err)
	}

	return decodeEnvelope[models.UserInfo](resp, h.unauthorized)
}

// Articles implements [ServerAdapter]. It GETs /article/list/{page}/json.
func (h *httpServerAdapter) Articles(ctx context.Context, page int) (models.PageBean[models.Article], error) {
	return getPage[models.Article](ctx, h, "/article/list/{page}/json", page)
}

// SquareArticles implements [ServerAdapter]. It GETs
// /user_article/list/{page}/json.
func (h *httpServerAdapter) SquareArticles(ctx context.Context, page int) (models.PageBean[models.Article], error) {
	return getPage[models.Article](ctx, h, "/user_article/list/{page}/json", page)
}

// Favorites implements [ServerAdapter]. It GETs /lg/collect/list/{page}/json.
func (h *httpServerAdapter) Favorites(ctx context.Context, page int) (models.PageBean[models.Article], error) {
	return getPage[models.Article](ctx, h, "/lg/collect/list/{page}/json", page)
}

// ReadMessages implements [ServerAdapter]. It GETs
// /message/lg/readed_list/{page}/json.
func (h *httpServerAdapter) ReadMessages(ctx context.Context, page int) (models.PageBean[models.Message], error) {
	return getPage[models.Message](ctx, h, "/message/lg/readed_list/{page}/json", page)
}

func getPage[T any](ctx context.Context, h *httpServerAdapter, path string, page int) (models.PageBean[T], error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("page", strconv.Itoa(page)).
		Get(path)
	if err != nil {
		return models.PageBean[T]{}, transportError(path, err)
	}

	return decodeEnvelope[models.PageBean[T]](resp, h.unauthorized)
}

func transportError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}

func tokenFromResponse(resp *resty.Response) string {
	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		return token
	}
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

func userIDFromToken(token string) int64 {
	sub, err := utils.ParseSubjectUnverified(token)
	if err != nil {
		return 0
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
