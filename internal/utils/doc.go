// Package utils provides general-purpose helper utilities used across the
// client: the shared resty HTTP client, request id generation, JWT helpers,
// JSON response writing for test backends and image file helpers.
package utils
