// Package config loads, merges and validates configuration for the diary
// client and server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetClientConfig] and [GetServerConfig] return role-specific views with
// defaults filled in.
package config
