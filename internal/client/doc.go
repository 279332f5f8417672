// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the feed client.
//
// It wires storage, the network stack and the session core, restores or
// opens a session, and pages through the home feed, printing what it sees.
package client
