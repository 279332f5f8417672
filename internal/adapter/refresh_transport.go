// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
	"github.com/MKhiriev/go-feed-client/models"
)

// RefreshTransport is an [http.RoundTripper] that recovers from expired
// sessions.
//
// A response is an authentication failure when its status is 401 or when its
// JSON envelope carries one of the configured unauthorized codes. On such a
// failure the transport asks the [TokenRefresher] for a new token and replays
// the request once with fresh credentials. When the refresh is impossible or
// fails, or the replay is rejected again, the failure is reported and the
// last response is returned to the caller unchanged.
//
// Until a refresher is installed with [RefreshTransport.SetTokenRefresher]
// the transport only forwards requests.
type RefreshTransport struct {
	base   http.RoundTripper
	codes  map[int]struct{}
	logger *logger.Logger

	mu        sync.RWMutex
	refresher TokenRefresher
}

var _ http.RoundTripper = (*RefreshTransport)(nil)

// NewRefreshTransport wraps base, or [http.DefaultTransport] when base is nil.
// unauthorizedCodes lists the envelope error codes treated like HTTP 401.
func NewRefreshTransport(base http.RoundTripper, unauthorizedCodes []int, log *logger.Logger) *RefreshTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RefreshTransport{
		base:   base,
		codes:  codeSet(unauthorizedCodes),
		logger: log,
	}
}

// SetTokenRefresher installs r. The refresher usually depends on the client
// that owns this transport, so it is wired after construction.
func (t *RefreshTransport) SetTokenRefresher(r TokenRefresher) {
	t.mu.Lock()
	t.refresher = r
	t.mu.Unlock()
}

func (t *RefreshTransport) tokenRefresher() TokenRefresher {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.refresher
}

// RoundTrip implements [http.RoundTripper].
func (t *RefreshTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	refresher := t.tokenRefresher()
	if refresher == nil || refreshDisabled(req.Context()) {
		return t.base.RoundTrip(req)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	unauthorized, err := t.isUnauthorized(resp)
	if err != nil || !unauthorized {
		return resp, err
	}

	failedToken := requestToken(req)
	log := t.logger.With().
		Str("func", "RefreshTransport.RoundTrip").
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Logger()

	if !refresher.CanRefresh() {
		log.Debug().Msg("authentication failed and no credentials to refresh with")
		refresher.ReportFailure(failedToken, ErrRefreshUnavailable)
		return resp, nil
	}

	if err = refresher.RefreshToken(req.Context(), failedToken); err != nil {
		log.Warn().Err(err).Msg("token refresh failed")
		refresher.ReportFailure(failedToken, err)
		return resp, nil
	}

	replay, err := refresher.RebuildRequest(req)
	if err != nil {
		log.Warn().Err(err).Msg("cannot rebuild request for replay")
		refresher.ReportFailure(failedToken, err)
		return resp, nil
	}

	drainBody(resp)

	replayResp, err := t.base.RoundTrip(replay)
	if err != nil {
		return nil, err
	}

	unauthorized, err = t.isUnauthorized(replayResp)
	if err != nil {
		return replayResp, err
	}
	if unauthorized {
		log.Warn().Msg("replayed request rejected again")
		refresher.ReportFailure(requestToken(replay), ErrUnauthorized)
	}

	return replayResp, nil
}

// isUnauthorized inspects resp. When the envelope has to be decoded the body
// is buffered and restored, so the caller can still read it.
func (t *RefreshTransport) isUnauthorized(resp *http.Response) (bool, error) {
	if resp.StatusCode == http.StatusUnauthorized {
		return true, nil
	}
	if len(t.codes) == 0 || resp.Body == nil || !isJSON(resp.Header.Get("Content-Type")) {
		return false, nil
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("%w: reading response body: %v", ErrTransport, err)
	}

	var env models.RawEnvelope
	if err = json.Unmarshal(body, &env); err != nil {
		return false, nil
	}

	_, hit := t.codes[env.ErrorCode]
	return hit && !env.OK(), nil
}

func requestToken(req *http.Request) string {
	token, err := utils.ParseBearerToken(req.Header.Get("Authorization"))
	if err != nil {
		return ""
	}
	return token
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.Contains(mediaType, "json")
}

func drainBody(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func codeSet(codes []int) map[int]struct{} {
	set := make(map[int]struct{}, len(codes))
	for _, c := range codes {
		if c != models.EnvelopeSuccessCode {
			set[c] = struct{}{}
		}
	}
	return set
}
