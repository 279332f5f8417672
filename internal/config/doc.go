// Package config provides configuration loading, merging, and validation
// for the feed client.
//
// Configuration is assembled from multiple sources. For each field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetClientConfig]; [GetStructuredConfig] exposes the
// raw merged tree.
package config
