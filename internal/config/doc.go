// Package config provides configuration loading, merging, and validation
// facilities for the Health Panda client.
//
// Configuration is assembled from multiple sources; for every field the
// highest-priority non-zero value wins:
//  1. JSON config file (lowest)
//  2. Environment variables
//  3. Command-line flags (highest)
//
// The main entry point is [GetClientConfig], which also applies defaults
// and validates the result.
package config
