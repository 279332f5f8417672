// Package backend is an in-memory content server used to run the client
// locally and to drive it end to end in tests.
//
// It serves the same resources as the production content API: a home feed,
// the article square, per-user favourites and message boxes, and a profile.
// Sessions are HMAC-signed JWTs with a configurable lifetime, so the
// client's silent re-login can be exercised with short token lifetimes or
// by expiring every session on demand.
package backend
