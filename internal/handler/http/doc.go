// Package http implements the HTTP surface of the stub content server.
//
// Every response, success or business failure, is an envelope delivered
// with HTTP 200. Routes under /lg/ and the profile require a session, which
// is read from the bearer header or the token_pass cookie. A missing or
// stale session is reported with the -1001 envelope code, or with HTTP 401
// when the server runs in status-401 mode.
package http
